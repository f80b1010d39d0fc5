package ports

import (
	"context"
	"time"

	"github.com/Cybrite/primetrade/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a new task. The owner is
// always the authenticated caller.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string // optional, defaults to pending
	Priority    string // optional, defaults to medium
	DueDate     *time.Time
}

// UpdateTaskInput carries the mutable task fields. Nil pointers mean
// "leave unchanged".
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

// ListTasksInput carries the parameters for the list endpoint. Actor drives
// the ownership scoping: non-admin callers only see their own tasks.
type ListTasksInput struct {
	Actor    *domain.User
	Status   string
	Priority string
	SortBy   string
}

// TaskStats is the aggregate view returned by Stats.
type TaskStats struct {
	TotalTasks int64                `json:"totalTasks"`
	Stats      []domain.StatusCount `json:"stats"`
}

// TaskService defines use-case operations for tasks. Every single-resource
// operation applies the ownership policy against the acting user.
type TaskService interface {
	Create(ctx context.Context, actor *domain.User, input CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Task, error)
	List(ctx context.Context, input ListTasksInput) ([]*domain.Task, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	Stats(ctx context.Context) (*TaskStats, error)
}
