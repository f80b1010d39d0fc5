package handler

import (
	"time"

	"github.com/Cybrite/primetrade/internal/core/domain"
)

type createTaskRequest struct {
	Title       string     `json:"title"       validate:"required,min=3,max=100"`
	Description string     `json:"description" validate:"required,min=5,max=500"`
	Status      string     `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}

// updateTaskRequest mirrors the create bounds with every field optional.
// Nil means "leave unchanged".
type updateTaskRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=3,max=100"`
	Description *string    `json:"description" validate:"omitempty,min=5,max=500"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}

type taskData struct {
	Task *domain.Task `json:"task"`
}

type taskListData struct {
	Count int            `json:"count"`
	Tasks []*domain.Task `json:"tasks"`
}
