package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
)

type DashboardConfigRepository struct {
	db *gorm.DB
}

func NewDashboardConfigRepository(db *gorm.DB) *DashboardConfigRepository {
	return &DashboardConfigRepository{db: db}
}

func (r *DashboardConfigRepository) FindByUserID(ctx context.Context, userID uint) (*domain.DashboardConfig, error) {
	var cfg domain.DashboardConfig
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConfigNotFound
		}
		return nil, fmt.Errorf("find dashboard config: %w", err)
	}
	return &cfg, nil
}

// Create inserts the config row. A duplicate-key error on user_id means a
// concurrent request materialized the row first.
func (r *DashboardConfigRepository) Create(ctx context.Context, cfg *domain.DashboardConfig) error {
	err := r.db.WithContext(ctx).Create(cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConfigExists
		}
		return fmt.Errorf("create dashboard config: %w", err)
	}
	return nil
}

func (r *DashboardConfigRepository) Save(ctx context.Context, cfg *domain.DashboardConfig) error {
	if err := r.db.WithContext(ctx).Save(cfg).Error; err != nil {
		return fmt.Errorf("save dashboard config: %w", err)
	}
	return nil
}
