package ports

import (
	"context"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
)

// UserRepository reads user rows from the identity store.
type UserRepository interface {
	// ListEmployeesByDepartment returns users with role employee in the
	// given department.
	ListEmployeesByDepartment(ctx context.Context, department string) ([]domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
