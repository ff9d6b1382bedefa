package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
	"github.com/peoplehub/hr-experience-api/internal/core/ports"
)

// Nudge rule thresholds.
const (
	highLeaveUsage      = 15 // used days that suggest strain
	frequentApprovals   = 3  // approved requests within the recent window
	untouchedBalanceMin = 18 // remaining days that suggest no break planned
	untouchedUsedMax    = 2
	recentLeaveWindow   = 10 // requests considered "recent"
	maxNudges           = 3
)

// NudgeCache stores computed nudge lists per user so repeated visits do not
// re-query leave and learning history. Implementations are expected to
// expire entries on their own.
type NudgeCache interface {
	Get(ctx context.Context, userID uint) ([]domain.Nudge, bool, error)
	Set(ctx context.Context, userID uint, nudges []domain.Nudge) error
}

// WellnessURLs holds the configured external wellness links.
type WellnessURLs struct {
	Counselling string
	Yoga        string
	Exercises   string
}

type WellnessService struct {
	leaves   ports.LeaveRepository
	learning ports.LearningProgressRepository
	links    []domain.WellnessLink
	cache    NudgeCache
	logger   zerolog.Logger
}

// NewWellnessService builds a WellnessService. cache may be nil, in which
// case nudges are recomputed on every request.
func NewWellnessService(
	leaves ports.LeaveRepository,
	learning ports.LearningProgressRepository,
	urls WellnessURLs,
	cache NudgeCache,
	logger zerolog.Logger,
) *WellnessService {
	return &WellnessService{
		leaves:   leaves,
		learning: learning,
		links: []domain.WellnessLink{
			{Name: "Counselling sessions", URL: urls.Counselling, Description: "Book confidential counselling or EAP sessions."},
			{Name: "Yoga classes", URL: urls.Yoga, Description: "Guided yoga and mindfulness sessions."},
			{Name: "Exercises", URL: urls.Exercises, Description: "Quick exercises and stretches for desk workers."},
		},
		cache:  cache,
		logger: logger,
	}
}

func (s *WellnessService) Links() []domain.WellnessLink {
	return s.links
}

func (s *WellnessService) Resources() []domain.WellnessResource {
	return wellnessResources
}

func (s *WellnessService) MentalHealthTips() []domain.MentalHealthTip {
	return mentalHealthTips
}

func (s *WellnessService) WorkLifeArticles() []domain.WorkLifeArticle {
	return workLifeArticles
}

func (s *WellnessService) ListSurveys() []ports.SurveySummary {
	out := make([]ports.SurveySummary, 0, len(surveyOrder))
	for _, id := range surveyOrder {
		sv := surveys[id]
		out = append(out, ports.SurveySummary{ID: sv.ID, Title: sv.Title, Description: sv.Description})
	}
	return out
}

func (s *WellnessService) GetSurvey(id string) (*domain.Survey, error) {
	sv, ok := surveys[id]
	if !ok {
		return nil, domain.ErrSurveyNotFound
	}
	return &sv, nil
}

// SubmitSurvey acknowledges a submission without persisting answers.
func (s *WellnessService) SubmitSurvey(id string) (*ports.SurveyReceipt, error) {
	if _, ok := surveys[id]; !ok {
		return nil, domain.ErrSurveyNotFound
	}
	s.logger.Info().Str("survey_id", id).Msg("survey submission received")
	return &ports.SurveyReceipt{Message: "Thank you for your response.", SurveyID: id}, nil
}

// Nudges derives at most three prioritized suggestions from the user's leave
// balance, recent leave requests, and learning progress.
func (s *WellnessService) Nudges(ctx context.Context, userID uint) ([]domain.Nudge, error) {
	if s.cache != nil {
		nudges, ok, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.logger.Warn().Err(err).Uint("user_id", userID).Msg("nudge cache read failed")
		} else if ok {
			return nudges, nil
		}
	}

	year := time.Now().UTC().Year()
	used, remaining := 0, domain.DefaultAnnualEntitlement
	balance, err := s.leaves.FindBalance(ctx, userID, year)
	switch {
	case err == nil:
		used, remaining = balance.UsedLeaves, balance.RemainingLeaves
	case !errors.Is(err, domain.ErrLeaveBalanceNotFound):
		return nil, err
	}

	recent, err := s.leaves.ListRecentByEmployee(ctx, userID, recentLeaveWindow)
	if err != nil {
		return nil, err
	}
	approvedRecent := 0
	for _, l := range recent {
		if l.Status == domain.LeaveStatusApproved {
			approvedRecent++
		}
	}

	progress, err := s.learning.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed, inProgress := 0, 0
	for _, p := range progress {
		switch p.Status {
		case domain.LearningStatusCompleted:
			completed++
		case domain.LearningStatusInProgress:
			inProgress++
		}
	}

	nudges := buildNudges(used, remaining, approvedRecent, completed, inProgress)

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, nudges); err != nil {
			s.logger.Warn().Err(err).Uint("user_id", userID).Msg("nudge cache write failed")
		}
	}
	return nudges, nil
}

// buildNudges evaluates the nudge rules in order. The leave rules are
// mutually exclusive (high usage wins over untouched balance); the learning
// rule is independent and may co-occur with either. The result is sorted by
// priority descending with a stable sort, so ties keep rule order, and
// truncated to maxNudges.
func buildNudges(used, remaining, approvedRecent, completed, inProgress int) []domain.Nudge {
	var nudges []domain.Nudge

	if used >= highLeaveUsage || approvedRecent >= frequentApprovals {
		nudges = append(nudges, domain.Nudge{
			Message:  "You've been using a lot of leave lately. Remember our counselling and work-life resources are here if you need support.",
			Type:     domain.NudgeWorkLife,
			Priority: 2,
		})
	} else if remaining >= untouchedBalanceMin && used <= untouchedUsedMax {
		nudges = append(nudges, domain.Nudge{
			Message:  "You have plenty of leave left. Consider planning a short break to recharge.",
			Type:     domain.NudgeBreak,
			Priority: 1,
		})
	}

	if completed == 0 && inProgress == 0 {
		nudges = append(nudges, domain.Nudge{
			Message:  "A short learning or wellness course can help break the routine. Check out Learning & Certifications.",
			Type:     domain.NudgeLearning,
			Priority: 0,
		})
	} else if inProgress >= 1 {
		nudges = append(nudges, domain.Nudge{
			Message:  "You're making progress on learning. A quick stretch or walk can help you focus when you return.",
			Type:     domain.NudgeGeneral,
			Priority: 0,
		})
	}

	if len(nudges) == 0 {
		nudges = append(nudges, domain.Nudge{
			Message:  "Small steps matter. Try a 5-minute stretch or a short walk today.",
			Type:     domain.NudgeGeneral,
			Priority: 0,
		})
	}

	sort.SliceStable(nudges, func(i, j int) bool { return nudges[i].Priority > nudges[j].Priority })
	if len(nudges) > maxNudges {
		nudges = nudges[:maxNudges]
	}
	return nudges
}
