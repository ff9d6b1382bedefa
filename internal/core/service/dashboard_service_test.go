package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
	"github.com/peoplehub/hr-experience-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubConfigRepo struct {
	byUser    map[uint]*domain.DashboardConfig
	creates   int
	saves     int
	createErr error // if set, Create returns this error
	missOnce  bool  // if set, the first FindByUserID misses even when a row exists
}

func newStubConfigRepo() *stubConfigRepo {
	return &stubConfigRepo{byUser: make(map[uint]*domain.DashboardConfig)}
}

func (r *stubConfigRepo) FindByUserID(_ context.Context, userID uint) (*domain.DashboardConfig, error) {
	if r.missOnce {
		r.missOnce = false
		return nil, domain.ErrConfigNotFound
	}
	cfg, ok := r.byUser[userID]
	if !ok {
		return nil, domain.ErrConfigNotFound
	}
	clone := *cfg
	return &clone, nil
}

func (r *stubConfigRepo) Create(_ context.Context, cfg *domain.DashboardConfig) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byUser[cfg.UserID]; ok {
		return domain.ErrConfigExists
	}
	r.creates++
	clone := *cfg
	r.byUser[cfg.UserID] = &clone
	return nil
}

func (r *stubConfigRepo) Save(_ context.Context, cfg *domain.DashboardConfig) error {
	r.saves++
	clone := *cfg
	r.byUser[cfg.UserID] = &clone
	return nil
}

type stubLeaveRepo struct {
	byEmployee   []domain.LeaveRequest
	pending      []domain.LeaveRequest
	recent       []domain.LeaveRequest
	balance      *domain.LeaveBalance
	lastDept     string // department passed to the last ListPendingByDepartment call
	lastEmployee uint
	calls        int
}

func (r *stubLeaveRepo) ListByEmployee(_ context.Context, employeeID uint) ([]domain.LeaveRequest, error) {
	r.calls++
	r.lastEmployee = employeeID
	return r.byEmployee, nil
}

func (r *stubLeaveRepo) ListPendingByDepartment(_ context.Context, department string) ([]domain.LeaveRequest, error) {
	r.calls++
	r.lastDept = department
	return r.pending, nil
}

func (r *stubLeaveRepo) ListRecentByEmployee(_ context.Context, employeeID uint, _ int) ([]domain.LeaveRequest, error) {
	r.calls++
	r.lastEmployee = employeeID
	return r.recent, nil
}

func (r *stubLeaveRepo) FindBalance(_ context.Context, _ uint, _ int) (*domain.LeaveBalance, error) {
	r.calls++
	if r.balance == nil {
		return nil, domain.ErrLeaveBalanceNotFound
	}
	return r.balance, nil
}

type stubUserRepo struct {
	employees []domain.User
	lastDept  string
}

func (r *stubUserRepo) ListEmployeesByDepartment(_ context.Context, department string) ([]domain.User, error) {
	r.lastDept = department
	return r.employees, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	return r.employees, nil
}

func newDashboardService(configs *stubConfigRepo, leaves *stubLeaveRepo, users *stubUserRepo) *DashboardService {
	return NewDashboardService(configs, leaves, users, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Get-or-create
// ---------------------------------------------------------------------------

func TestGetDashboard_FirstFetchMaterializesDefaultConfig(t *testing.T) {
	configs := newStubConfigRepo()
	svc := newDashboardService(configs, &stubLeaveRepo{}, &stubUserRepo{})

	data, err := svc.GetDashboard(context.Background(), ports.Identity{UserID: 7, Role: "contractor"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := data.Config
	all := f.ShowLeaves && f.ShowLearning && f.ShowCompliance && f.ShowProfile &&
		f.ShowAttendance && f.ShowPayroll && f.ShowCareer && f.ShowWellness
	if !all {
		t.Fatalf("expected all flags true on first fetch, got %+v", f)
	}
	if configs.creates != 1 {
		t.Fatalf("expected 1 create, got %d", configs.creates)
	}

	// Second fetch reads the existing row and must not insert again.
	if _, err := svc.GetDashboard(context.Background(), ports.Identity{UserID: 7, Role: "contractor"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if configs.creates != 1 {
		t.Fatalf("expected no second create, got %d", configs.creates)
	}
}

func TestGetDashboard_LostInsertRaceReReads(t *testing.T) {
	configs := newStubConfigRepo()
	// Another request already materialized the row, but our first lookup ran
	// before its commit: the find misses, the insert hits the unique index.
	existing := domain.DefaultDashboardConfig(7)
	existing.ShowPayroll = false
	configs.byUser[7] = existing
	configs.missOnce = true
	configs.createErr = domain.ErrConfigExists

	svc := newDashboardService(configs, &stubLeaveRepo{}, &stubUserRepo{})

	data, err := svc.GetDashboard(context.Background(), ports.Identity{UserID: 7, Role: "contractor"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Config.ShowPayroll {
		t.Fatalf("expected the winner's row to be returned, got %+v", data.Config)
	}
	if configs.creates != 0 {
		t.Fatalf("losing insert must not create a row")
	}
}

func TestGetDashboard_StoreFailurePropagates(t *testing.T) {
	configs := newStubConfigRepo()
	configs.createErr = errors.New("connection reset")
	svc := newDashboardService(configs, &stubLeaveRepo{}, &stubUserRepo{})

	if _, err := svc.GetDashboard(context.Background(), ports.Identity{UserID: 7, Role: "employee"}); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}

// ---------------------------------------------------------------------------
// Role scoping
// ---------------------------------------------------------------------------

func TestGetDashboard_EmployeeSeesOwnLeavesOnly(t *testing.T) {
	leaves := &stubLeaveRepo{byEmployee: []domain.LeaveRequest{
		{ID: 1, EmployeeID: 7, Department: "engineering", Reason: "vacation", Status: domain.LeaveStatusApproved},
		{ID: 2, EmployeeID: 7, Department: "engineering", Reason: "sick", Status: domain.LeaveStatusPending},
	}}
	svc := newDashboardService(newStubConfigRepo(), leaves, &stubUserRepo{})

	data, err := svc.GetDashboard(context.Background(), ports.Identity{UserID: 7, Role: domain.RoleEmployee, Department: "engineering"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.LeaveRequests) != 2 {
		t.Fatalf("expected 2 leave requests, got %d", len(data.LeaveRequests))
	}
	if leaves.lastEmployee != 7 {
		t.Fatalf("expected leaves queried for user 7, got %d", leaves.lastEmployee)
	}
	if data.LeaveRequests[0].EmployeeName != "" {
		t.Fatalf("employee view must not carry employee names")
	}
	if data.TeamMembers != nil || data.PendingLeaves != nil {
		t.Fatalf("employee dashboard must not populate manager collections")
	}
}

func TestGetDashboard_ManagerSeesTeamAndPending(t *testing.T) {
	users := &stubUserRepo{employees: []domain.User{
		{ID: 3, Name: "Dana", Email: "dana@corp.test", Role: domain.RoleEmployee, Department: "engineering", Skills: `["go","sql"]`},
	}}
	leaves := &stubLeaveRepo{pending: []domain.LeaveRequest{
		{ID: 9, EmployeeID: 3, Department: "engineering", Status: domain.LeaveStatusPending, Employee: domain.User{Name: "Dana"}},
	}}
	svc := newDashboardService(newStubConfigRepo(), leaves, users)

	data, err := svc.GetDashboard(context.Background(), ports.Identity{UserID: 1, Role: domain.RoleManager, Department: "engineering"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.LeaveRequests != nil {
		t.Fatalf("manager dashboard must not populate leave_requests")
	}
	if users.lastDept != "engineering" || leaves.lastDept != "engineering" {
		t.Fatalf("queries must be scoped to the manager's department")
	}
	if len(data.TeamMembers) != 1 {
		t.Fatalf("expected 1 team member, got %d", len(data.TeamMembers))
	}
	if got := data.TeamMembers[0].Skills; len(got) != 2 || got[0] != "go" {
		t.Fatalf("expected decoded skill list, got %v", got)
	}
	if len(data.PendingLeaves) != 1 || data.PendingLeaves[0].EmployeeName != "Dana" {
		t.Fatalf("pending leaves must carry the requester's name: %+v", data.PendingLeaves)
	}
}

func TestGetDashboard_OtherRoleGetsConfigOnly(t *testing.T) {
	leaves := &stubLeaveRepo{byEmployee: []domain.LeaveRequest{{ID: 1}}}
	users := &stubUserRepo{employees: []domain.User{{ID: 2}}}
	svc := newDashboardService(newStubConfigRepo(), leaves, users)

	data, err := svc.GetDashboard(context.Background(), ports.Identity{UserID: 7, Role: domain.RoleHRAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.LeaveRequests != nil || data.TeamMembers != nil || data.PendingLeaves != nil {
		t.Fatalf("non employee/manager roles get config only: %+v", data)
	}
}

// ---------------------------------------------------------------------------
// Partial config update
// ---------------------------------------------------------------------------

func TestUpdateConfig_AppliesOnlySuppliedFields(t *testing.T) {
	configs := newStubConfigRepo()
	configs.byUser[7] = domain.DefaultDashboardConfig(7)
	svc := newDashboardService(configs, &stubLeaveRepo{}, &stubUserRepo{})

	off := false
	flags, err := svc.UpdateConfig(context.Background(), 7, ports.ConfigUpdateInput{ShowLeaves: &off})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flags.ShowLeaves {
		t.Fatalf("show_leaves should be off")
	}
	rest := flags.ShowLearning && flags.ShowCompliance && flags.ShowProfile &&
		flags.ShowAttendance && flags.ShowPayroll && flags.ShowCareer && flags.ShowWellness
	if !rest {
		t.Fatalf("untouched flags must keep their stored values: %+v", flags)
	}
	if configs.saves != 1 {
		t.Fatalf("expected exactly one save, got %d", configs.saves)
	}
}

func TestUpdateConfig_MaterializesRowWhenAbsent(t *testing.T) {
	configs := newStubConfigRepo()
	svc := newDashboardService(configs, &stubLeaveRepo{}, &stubUserRepo{})

	off := false
	flags, err := svc.UpdateConfig(context.Background(), 42, ports.ConfigUpdateInput{ShowWellness: &off})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if configs.creates != 1 {
		t.Fatalf("expected the row to be created first")
	}
	if flags.ShowWellness || !flags.ShowLeaves {
		t.Fatalf("expected defaults plus the supplied change, got %+v", flags)
	}
}
