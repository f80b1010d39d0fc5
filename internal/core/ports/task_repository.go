package ports

import (
	"context"

	"github.com/Cybrite/primetrade/internal/core/domain"
)

// ListTasksFilter carries all query parameters for listing tasks.
// UserID is always enforced by the service layer (ownership scoping).
type ListTasksFilter struct {
	UserID   string // empty = no filter (admin); non-empty = scoped to owner
	Status   string // optional: filter by task status
	Priority string // optional: filter by priority
	SortBy   string // optional: field name, "-" prefix for descending (default -createdAt)
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	// FindByID retrieves a task by id. A malformed id is reported as
	// domain.ErrTaskNotFound, matching the behaviour of a missing document.
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
	// CountByStatus returns the per-status buckets and the total task count.
	CountByStatus(ctx context.Context) ([]domain.StatusCount, int64, error)
}
