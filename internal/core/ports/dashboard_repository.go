package ports

import (
	"context"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
)

// DashboardConfigRepository persists per-user widget visibility.
type DashboardConfigRepository interface {
	// FindByUserID returns domain.ErrConfigNotFound when no row exists yet.
	FindByUserID(ctx context.Context, userID uint) (*domain.DashboardConfig, error)
	// Create returns domain.ErrConfigExists when the user already has a row,
	// so a lost insert race can be resolved by re-reading.
	Create(ctx context.Context, cfg *domain.DashboardConfig) error
	Save(ctx context.Context, cfg *domain.DashboardConfig) error
}
