package service

import "github.com/peoplehub/hr-experience-api/internal/core/domain"

// Static wellness content. Curated by the people team and shipped with the
// binary; changing it is a code change, not a runtime operation. Read-only
// after init, so safe for concurrent requests.

var wellnessResources = []domain.WellnessResource{
	{Title: "Employee Assistance Program", Content: "Confidential support for personal and work issues.", Category: "support"},
	{Title: "Health & Fitness Guidelines", Content: "Company guidelines for staying active and healthy.", Category: "physical"},
	{Title: "Sleep & Recovery", Content: "Tips for better sleep and recovery after work.", Category: "physical"},
}

var mentalHealthTips = []domain.MentalHealthTip{
	{Title: "Take short breaks", Content: "Step away from your desk every 90 minutes. A 5-minute walk or stretch can reset your focus.", Category: "breaks"},
	{Title: "Set boundaries", Content: "Define clear start and end times for work. Avoid checking email after hours when possible.", Category: "work_life"},
	{Title: "Practice breathing", Content: "Try 4-7-8 breathing: inhale 4 counts, hold 7, exhale 8. Repeat a few times when stressed.", Category: "stress"},
	{Title: "Stay connected", Content: "Reach out to a colleague or friend. Social connection supports mental well-being.", Category: "social"},
	{Title: "Acknowledge feelings", Content: "It's okay to feel overwhelmed. Naming the feeling can reduce its intensity.", Category: "mindfulness"},
}

var workLifeArticles = []domain.WorkLifeArticle{
	{Title: "Flexible working", Content: "Use flexible hours and remote options where available. Align your schedule with your energy levels."},
	{Title: "Time blocking", Content: "Block focus time and break time on your calendar. Protect these blocks like meetings."},
	{Title: "Unplug after work", Content: "Create a simple end-of-day ritual (e.g. close laptop, short walk) to signal work is done."},
}

// surveyOrder fixes the order of the survey list; map iteration is random.
var surveyOrder = []string{"wellness-check-2025", "engagement-pulse"}

var surveys = map[string]domain.Survey{
	"wellness-check-2025": {
		ID:          "wellness-check-2025",
		Title:       "Wellness Check-in",
		Description: "Quick check-in to see how you're doing and what support might help.",
		Questions: []domain.SurveyQuestion{
			{ID: "q1", Question: "How would you rate your overall well-being this week? (1 = low, 5 = high)", Type: "scale", Options: []string{"1", "2", "3", "4", "5"}},
			{ID: "q2", Question: "What would help you most right now?", Type: "single_choice", Options: []string{"More flexible hours", "Mental health resources", "Fitness options", "Better work-life balance", "Other"}},
			{ID: "q3", Question: "Any comments or suggestions? (optional)", Type: "text"},
		},
	},
	"engagement-pulse": {
		ID:          "engagement-pulse",
		Title:       "Engagement Pulse",
		Description: "Short survey to understand what keeps you engaged at work.",
		Questions: []domain.SurveyQuestion{
			{ID: "e1", Question: "I feel valued at work.", Type: "scale", Options: []string{"1", "2", "3", "4", "5"}},
			{ID: "e2", Question: "I have opportunities to learn and grow.", Type: "scale", Options: []string{"1", "2", "3", "4", "5"}},
			{ID: "e3", Question: "Additional feedback (optional)", Type: "text"},
		},
	},
}
