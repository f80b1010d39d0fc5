package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Cybrite/primetrade/internal/core/domain"
	"github.com/Cybrite/primetrade/internal/core/ports"
)

// TaskService implements the task use-cases. Ownership is enforced here, not
// in the transport layer: every single-resource operation loads the task and
// applies domain.User.CanAccess before touching it.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// Create inserts a new task owned by the acting user. Missing status and
// priority fall back to their defaults.
func (s *TaskService) Create(ctx context.Context, actor *domain.User, input ports.CreateTaskInput) (*domain.Task, error) {
	status := domain.TaskStatus(input.Status)
	if status == "" {
		status = domain.StatusPending
	}
	priority := domain.TaskPriority(input.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		UserID:      actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", actor.ID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("user_id", actor.ID).Msg("task created")
	return created, nil
}

// Get retrieves a single task, applying the ownership policy.
func (s *TaskService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(task.UserID) {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

// List returns the tasks visible to the actor. Non-admin callers are scoped
// to their own tasks; admins see everything.
func (s *TaskService) List(ctx context.Context, input ports.ListTasksInput) ([]*domain.Task, error) {
	filter := ports.ListTasksFilter{
		Status:   input.Status,
		Priority: input.Priority,
		SortBy:   input.SortBy,
	}
	if input.Actor.Role != domain.RoleAdmin {
		filter.UserID = input.Actor.ID
	}
	return s.repo.List(ctx, filter)
}

// Update mutates a task after the ownership check. Nil input fields are left
// unchanged.
func (s *TaskService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(task.UserID) {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = domain.TaskStatus(*input.Status)
	}
	if input.Priority != nil {
		task.Priority = domain.TaskPriority(*input.Priority)
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("task_id", id).Msg("failed to update task")
		return nil, err
	}
	return updated, nil
}

// Delete removes a task permanently after the ownership check.
func (s *TaskService) Delete(ctx context.Context, actor *domain.User, id string) error {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanAccess(task.UserID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, task.ID); err != nil {
		s.logger.Error().Err(err).Str("task_id", id).Msg("failed to delete task")
		return err
	}

	s.logger.Info().Str("task_id", id).Str("user_id", actor.ID).Msg("task deleted")
	return nil
}

// Stats aggregates task counts by status across all users.
func (s *TaskService) Stats(ctx context.Context) (*ports.TaskStats, error) {
	counts, total, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.TaskStats{TotalTasks: total, Stats: counts}, nil
}
