package repository

import (
	"context"

	"github.com/yukikurage/todo-cli/internal/models"
)

// TaskRepository defines the interface for task data access.
// Tasks are addressed by their generated code only.
type TaskRepository interface {
	// Create persists a new task; the store assigns its code
	Create(ctx context.Context, task *models.Task) error

	// FindByCode finds the task whose code matches exactly
	FindByCode(ctx context.Context, code string) (*models.Task, error)

	// DeleteByCode removes at most one task and returns how many were removed
	DeleteByCode(ctx context.Context, code string) (int64, error)

	// UpdateByCode applies partial changes to name, detail and status
	UpdateByCode(ctx context.Context, code string, update TaskUpdate) error

	// List retrieves tasks with filtering and pagination
	List(ctx context.Context, filter TaskFilter) ([]models.Task, int64, error)
}

// TaskUpdate holds the mutable task fields; nil means unchanged
type TaskUpdate struct {
	Name   *string
	Detail *string
	Status *models.TaskStatus
}

// IsEmpty reports whether no field is set
func (u TaskUpdate) IsEmpty() bool {
	return u.Name == nil && u.Detail == nil && u.Status == nil
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	Status   *models.TaskStatus
	Page     int
	PageSize int
}
