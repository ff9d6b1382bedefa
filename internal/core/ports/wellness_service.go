package ports

import (
	"context"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
)

// SurveySummary is the lightweight survey view used in list responses.
type SurveySummary struct {
	ID          string
	Title       string
	Description string
}

// SurveyReceipt acknowledges a survey submission.
type SurveyReceipt struct {
	Message  string
	SurveyID string
}

// WellnessService serves static wellness content and computes personalized
// nudges. The static accessors never fail; survey lookups and submissions
// return domain.ErrSurveyNotFound for unknown ids.
type WellnessService interface {
	Links() []domain.WellnessLink
	Resources() []domain.WellnessResource
	MentalHealthTips() []domain.MentalHealthTip
	WorkLifeArticles() []domain.WorkLifeArticle
	ListSurveys() []SurveySummary
	GetSurvey(id string) (*domain.Survey, error)
	SubmitSurvey(id string) (*SurveyReceipt, error)
	Nudges(ctx context.Context, userID uint) ([]domain.Nudge, error)
}
