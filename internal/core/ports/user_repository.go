package ports

import (
	"context"

	"github.com/Cybrite/primetrade/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile sets the name and/or email of an existing user. Empty
	// fields are left untouched. Returns domain.ErrEmailTaken when the new
	// email collides with another account.
	UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error)
}
