package mysql

import (
	"context"
	"fmt"
	"time"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for establishing a MySQL connection.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect opens a GORM MySQL handle and verifies connectivity with a ping.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey across all repositories.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormmysql.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql handle: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("mysql ping: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for all persisted models. The unique
// index on dashboard_configs.user_id is what makes the config get-or-create
// race safe.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.DashboardConfig{},
		&domain.LeaveRequest{},
		&domain.LeaveBalance{},
		&domain.UserLearningProgress{},
	)
}
