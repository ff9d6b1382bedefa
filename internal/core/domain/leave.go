package domain

import (
	"errors"
	"time"
)

// Leave request lifecycle states. Status strings are stored as-is, so these
// are capitalized to match the rows written by the leave module.
const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// DefaultAnnualEntitlement is assumed for users with no balance row for the
// current year.
const DefaultAnnualEntitlement = 20

var ErrLeaveBalanceNotFound = errors.New("leave balance not found")

// LeaveRequest is read-only here; the leave module owns writes.
type LeaveRequest struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	EmployeeID uint      `json:"employee_id" gorm:"index;not null"`
	Employee   User      `json:"-" gorm:"foreignKey:EmployeeID"`
	Department string    `json:"department" gorm:"size:64;index"`
	FromDate   time.Time `json:"from_date"`
	ToDate     time.Time `json:"to_date"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status" gorm:"size:16;default:Pending;index"`
	CreatedAt  time.Time `json:"created_at"`
}

// LeaveBalance tracks used and remaining leave per user per calendar year.
type LeaveBalance struct {
	ID              uint `json:"-" gorm:"primaryKey"`
	UserID          uint `json:"user_id" gorm:"uniqueIndex:idx_balance_user_year;not null"`
	Year            int  `json:"year" gorm:"uniqueIndex:idx_balance_user_year;not null"`
	UsedLeaves      int  `json:"used_leaves"`
	RemainingLeaves int  `json:"remaining_leaves"`
}
