package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// configUpdateRequest carries a partial flag update. Absent fields leave the
// stored values untouched, so every field is a pointer and none is required.
type configUpdateRequest struct {
	ShowLeaves     *bool `json:"show_leaves"`
	ShowLearning   *bool `json:"show_learning"`
	ShowCompliance *bool `json:"show_compliance"`
	ShowProfile    *bool `json:"show_profile"`
	ShowAttendance *bool `json:"show_attendance"`
	ShowPayroll    *bool `json:"show_payroll"`
	ShowCareer     *bool `json:"show_career"`
	ShowWellness   *bool `json:"show_wellness"`
}

// configResponse is the full resulting flag set.
type configResponse struct {
	ShowLeaves     bool `json:"show_leaves"`
	ShowLearning   bool `json:"show_learning"`
	ShowCompliance bool `json:"show_compliance"`
	ShowProfile    bool `json:"show_profile"`
	ShowAttendance bool `json:"show_attendance"`
	ShowPayroll    bool `json:"show_payroll"`
	ShowCareer     bool `json:"show_career"`
	ShowWellness   bool `json:"show_wellness"`
}

type leaveRequestResponse struct {
	ID           uint      `json:"id"`
	EmployeeID   uint      `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Department   string    `json:"department"`
	FromDate     time.Time `json:"from_date"`
	ToDate       time.Time `json:"to_date"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
}

type teamMemberResponse struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	Department string   `json:"department"`
	Skills     []string `json:"skills"`
}

// dashboardResponse is the assembled dashboard payload. The role-scoped
// collections are omitted when empty: employees only ever see
// leave_requests, managers only team_members and pending_leaves.
type dashboardResponse struct {
	Config        configResponse         `json:"config"`
	LeaveRequests []leaveRequestResponse `json:"leave_requests,omitempty"`
	TeamMembers   []teamMemberResponse   `json:"team_members,omitempty"`
	PendingLeaves []leaveRequestResponse `json:"pending_leaves,omitempty"`
}
