package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
	"github.com/peoplehub/hr-experience-api/internal/core/ports"
)

type DashboardService struct {
	configs ports.DashboardConfigRepository
	leaves  ports.LeaveRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewDashboardService(
	configs ports.DashboardConfigRepository,
	leaves ports.LeaveRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{configs: configs, leaves: leaves, users: users, logger: logger}
}

// GetDashboard returns the user's widget config (materialized on first
// fetch) plus the collections their role is entitled to see.
func (s *DashboardService) GetDashboard(ctx context.Context, id ports.Identity) (*ports.DashboardData, error) {
	cfg, err := s.getOrCreateConfig(ctx, id.UserID)
	if err != nil {
		return nil, err
	}

	data := &ports.DashboardData{Config: toFlags(cfg)}

	switch id.Role {
	case domain.RoleEmployee:
		leaves, err := s.leaves.ListByEmployee(ctx, id.UserID)
		if err != nil {
			return nil, err
		}
		data.LeaveRequests = make([]ports.LeaveRequestView, 0, len(leaves))
		for _, l := range leaves {
			data.LeaveRequests = append(data.LeaveRequests, toLeaveView(l, false))
		}

	case domain.RoleManager:
		team, err := s.users.ListEmployeesByDepartment(ctx, id.Department)
		if err != nil {
			return nil, err
		}
		data.TeamMembers = make([]ports.TeamMemberView, 0, len(team))
		for _, u := range team {
			data.TeamMembers = append(data.TeamMembers, ports.TeamMemberView{
				ID:         u.ID,
				Name:       u.Name,
				Email:      u.Email,
				Role:       u.Role,
				Department: u.Department,
				Skills:     u.SkillList(),
			})
		}

		pending, err := s.leaves.ListPendingByDepartment(ctx, id.Department)
		if err != nil {
			return nil, err
		}
		data.PendingLeaves = make([]ports.LeaveRequestView, 0, len(pending))
		for _, l := range pending {
			data.PendingLeaves = append(data.PendingLeaves, toLeaveView(l, true))
		}
	}

	return data, nil
}

// UpdateConfig applies a partial flag update on top of the stored (or
// freshly materialized) config and returns the full resulting flag set.
func (s *DashboardService) UpdateConfig(ctx context.Context, userID uint, update ports.ConfigUpdateInput) (*ports.ConfigFlags, error) {
	cfg, err := s.getOrCreateConfig(ctx, userID)
	if err != nil {
		return nil, err
	}

	setIf(&cfg.ShowLeaves, update.ShowLeaves)
	setIf(&cfg.ShowLearning, update.ShowLearning)
	setIf(&cfg.ShowCompliance, update.ShowCompliance)
	setIf(&cfg.ShowProfile, update.ShowProfile)
	setIf(&cfg.ShowAttendance, update.ShowAttendance)
	setIf(&cfg.ShowPayroll, update.ShowPayroll)
	setIf(&cfg.ShowCareer, update.ShowCareer)
	setIf(&cfg.ShowWellness, update.ShowWellness)

	if err := s.configs.Save(ctx, cfg); err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Msg("failed to save dashboard config")
		return nil, err
	}

	flags := toFlags(cfg)
	return &flags, nil
}

// getOrCreateConfig looks up the user's config row and materializes the
// all-visible default on first touch. Concurrent first requests race on the
// insert; the loser hits the unique constraint on user_id and resolves by
// re-reading the row the winner created.
func (s *DashboardService) getOrCreateConfig(ctx context.Context, userID uint) (*domain.DashboardConfig, error) {
	cfg, err := s.configs.FindByUserID(ctx, userID)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, domain.ErrConfigNotFound) {
		return nil, err
	}

	cfg = domain.DefaultDashboardConfig(userID)
	if err := s.configs.Create(ctx, cfg); err != nil {
		if errors.Is(err, domain.ErrConfigExists) {
			return s.configs.FindByUserID(ctx, userID)
		}
		return nil, err
	}
	s.logger.Info().Uint("user_id", userID).Msg("dashboard config created")
	return cfg, nil
}

func setIf(dst *bool, val *bool) {
	if val != nil {
		*dst = *val
	}
}

func toFlags(cfg *domain.DashboardConfig) ports.ConfigFlags {
	return ports.ConfigFlags{
		ShowLeaves:     cfg.ShowLeaves,
		ShowLearning:   cfg.ShowLearning,
		ShowCompliance: cfg.ShowCompliance,
		ShowProfile:    cfg.ShowProfile,
		ShowAttendance: cfg.ShowAttendance,
		ShowPayroll:    cfg.ShowPayroll,
		ShowCareer:     cfg.ShowCareer,
		ShowWellness:   cfg.ShowWellness,
	}
}

func toLeaveView(l domain.LeaveRequest, withName bool) ports.LeaveRequestView {
	v := ports.LeaveRequestView{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		Department: l.Department,
		FromDate:   l.FromDate,
		ToDate:     l.ToDate,
		Reason:     l.Reason,
		Status:     l.Status,
	}
	if withName {
		v.EmployeeName = l.Employee.Name
	}
	return v
}
