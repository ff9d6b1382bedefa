package domain

import "time"

const (
	LearningStatusCompleted  = "completed"
	LearningStatusInProgress = "in_progress"
	LearningStatusNotStarted = "not_started"
)

// UserLearningProgress records a user's state on a single learning item.
// Owned by the learning module; read-only here.
type UserLearningProgress struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ContentID uint      `json:"content_id"`
	Status    string    `json:"status" gorm:"size:16;default:not_started"`
	UpdatedAt time.Time `json:"updated_at"`
}
