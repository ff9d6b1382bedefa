package ports

import (
	"context"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
	Skills     []string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
