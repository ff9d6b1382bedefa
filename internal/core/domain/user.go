package domain

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleHRAdmin  = "hr_admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an employee account. The identity store owns these rows; this
// service only reads them, except for registration.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:191;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"size:32;default:employee"`
	Department   string    `json:"department" gorm:"size:64;index"`
	Skills       string    `json:"-"` // JSON-encoded string list
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SkillList decodes the serialized skills column. Empty or malformed values
// decode to an empty list rather than an error.
func (u *User) SkillList() []string {
	if u.Skills == "" {
		return []string{}
	}
	var skills []string
	if err := json.Unmarshal([]byte(u.Skills), &skills); err != nil {
		return []string{}
	}
	return skills
}
