package ports

import (
	"context"
	"time"
)

// Identity describes the authenticated user a request is served for, as
// resolved by the auth middleware.
type Identity struct {
	UserID     uint
	Role       string
	Department string
}

// ConfigFlags is the full widget-visibility flag set.
type ConfigFlags struct {
	ShowLeaves     bool
	ShowLearning   bool
	ShowCompliance bool
	ShowProfile    bool
	ShowAttendance bool
	ShowPayroll    bool
	ShowCareer     bool
	ShowWellness   bool
}

// ConfigUpdateInput carries a partial flag update. Nil fields leave the
// stored value untouched.
type ConfigUpdateInput struct {
	ShowLeaves     *bool
	ShowLearning   *bool
	ShowCompliance *bool
	ShowProfile    *bool
	ShowAttendance *bool
	ShowPayroll    *bool
	ShowCareer     *bool
	ShowWellness   *bool
}

// LeaveRequestView is a leave request as shown on a dashboard. EmployeeName
// is only populated for a manager's pending-approvals list.
type LeaveRequestView struct {
	ID           uint
	EmployeeID   uint
	EmployeeName string
	Department   string
	FromDate     time.Time
	ToDate       time.Time
	Reason       string
	Status       string
}

// TeamMemberView is a roster entry on a manager's dashboard.
type TeamMemberView struct {
	ID         uint
	Name       string
	Email      string
	Role       string
	Department string
	Skills     []string
}

// DashboardData is the assembled dashboard payload. Exactly one of the
// role-scoped collections is populated depending on the requester's role:
// LeaveRequests for employees, TeamMembers and PendingLeaves for managers,
// none for any other role.
type DashboardData struct {
	Config        ConfigFlags
	LeaveRequests []LeaveRequestView
	TeamMembers   []TeamMemberView
	PendingLeaves []LeaveRequestView
}

// DashboardService defines use-case operations for the personalized dashboard.
type DashboardService interface {
	GetDashboard(ctx context.Context, id Identity) (*DashboardData, error)
	UpdateConfig(ctx context.Context, userID uint, update ConfigUpdateInput) (*ConfigFlags, error)
}
