package ports

import (
	"context"

	"github.com/Cybrite/primetrade/internal/core/domain"
)

// AuthService implements registration, login and profile management.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	UpdateProfile(ctx context.Context, userID, name, email string) (*domain.User, error)
}
