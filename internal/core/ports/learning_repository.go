package ports

import (
	"context"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
)

// LearningProgressRepository reads learning records owned by the learning module.
type LearningProgressRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]domain.UserLearningProgress, error)
}
