package domain

import "errors"

var ErrConfigNotFound = errors.New("dashboard config not found")
var ErrConfigExists = errors.New("dashboard config already exists")

// DashboardConfig holds per-user widget visibility. At most one row exists
// per user, enforced by the unique index on UserID.
type DashboardConfig struct {
	ID             uint `json:"-" gorm:"primaryKey"`
	UserID         uint `json:"-" gorm:"uniqueIndex;not null"`
	ShowLeaves     bool `json:"show_leaves"`
	ShowLearning   bool `json:"show_learning"`
	ShowCompliance bool `json:"show_compliance"`
	ShowProfile    bool `json:"show_profile"`
	ShowAttendance bool `json:"show_attendance"`
	ShowPayroll    bool `json:"show_payroll"`
	ShowCareer     bool `json:"show_career"`
	ShowWellness   bool `json:"show_wellness"`
}

// DefaultDashboardConfig is the config materialized on a user's first
// dashboard fetch: every widget visible.
func DefaultDashboardConfig(userID uint) *DashboardConfig {
	return &DashboardConfig{
		UserID:         userID,
		ShowLeaves:     true,
		ShowLearning:   true,
		ShowCompliance: true,
		ShowProfile:    true,
		ShowAttendance: true,
		ShowPayroll:    true,
		ShowCareer:     true,
		ShowWellness:   true,
	}
}
