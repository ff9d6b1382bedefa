package domain

import "errors"

var ErrSurveyNotFound = errors.New("survey not found")

// Nudge categories.
const (
	NudgeWorkLife = "work_life"
	NudgeBreak    = "break"
	NudgeLearning = "learning"
	NudgeGeneral  = "general"
)

// Nudge is a short prioritized wellness suggestion derived from a user's
// leave and learning records. Higher priority sorts first.
type Nudge struct {
	Message  string `json:"message"`
	Type     string `json:"type"`
	Priority int    `json:"priority"`
}

// WellnessLink points at an external wellness offering. URLs come from
// process configuration, never from code.
type WellnessLink struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type WellnessResource struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	URL      string `json:"url,omitempty"`
}

type MentalHealthTip struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type WorkLifeArticle struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url,omitempty"`
}

type SurveyQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
}

// Survey is a static engagement survey. Definitions are compiled in;
// submissions are acknowledged but not persisted yet.
type Survey struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []SurveyQuestion `json:"questions"`
}
