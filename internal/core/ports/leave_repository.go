package ports

import (
	"context"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
)

// LeaveRepository reads leave data owned by the leave module.
type LeaveRepository interface {
	// ListByEmployee returns every leave request filed by the employee,
	// newest first, regardless of status.
	ListByEmployee(ctx context.Context, employeeID uint) ([]domain.LeaveRequest, error)
	// ListPendingByDepartment returns Pending requests in the department with
	// the Employee association populated for name display.
	ListPendingByDepartment(ctx context.Context, department string) ([]domain.LeaveRequest, error)
	// ListRecentByEmployee returns at most limit requests ordered by start
	// date descending.
	ListRecentByEmployee(ctx context.Context, employeeID uint, limit int) ([]domain.LeaveRequest, error)
	// FindBalance returns domain.ErrLeaveBalanceNotFound when the user has no
	// balance row for the year.
	FindBalance(ctx context.Context, userID uint, year int) (*domain.LeaveBalance, error)
}
