package mysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
)

type LearningProgressRepository struct {
	db *gorm.DB
}

func NewLearningProgressRepository(db *gorm.DB) *LearningProgressRepository {
	return &LearningProgressRepository{db: db}
}

func (r *LearningProgressRepository) ListByUser(ctx context.Context, userID uint) ([]domain.UserLearningProgress, error) {
	var rows []domain.UserLearningProgress
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list learning progress: %w", err)
	}
	return rows, nil
}
