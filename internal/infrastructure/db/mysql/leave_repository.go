package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) ListByEmployee(ctx context.Context, employeeID uint) ([]domain.LeaveRequest, error) {
	var leaves []domain.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("from_date DESC").
		Find(&leaves).Error
	if err != nil {
		return nil, fmt.Errorf("list leaves by employee: %w", err)
	}
	return leaves, nil
}

func (r *LeaveRepository) ListPendingByDepartment(ctx context.Context, department string) ([]domain.LeaveRequest, error) {
	var leaves []domain.LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("department = ? AND status = ?", department, domain.LeaveStatusPending).
		Order("from_date").
		Find(&leaves).Error
	if err != nil {
		return nil, fmt.Errorf("list pending leaves: %w", err)
	}
	return leaves, nil
}

func (r *LeaveRepository) ListRecentByEmployee(ctx context.Context, employeeID uint, limit int) ([]domain.LeaveRequest, error) {
	var leaves []domain.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("from_date DESC").
		Limit(limit).
		Find(&leaves).Error
	if err != nil {
		return nil, fmt.Errorf("list recent leaves: %w", err)
	}
	return leaves, nil
}

func (r *LeaveRepository) FindBalance(ctx context.Context, userID uint, year int) (*domain.LeaveBalance, error) {
	var balance domain.LeaveBalance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ?", userID, year).
		First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeaveBalanceNotFound
		}
		return nil, fmt.Errorf("find leave balance: %w", err)
	}
	return &balance, nil
}
