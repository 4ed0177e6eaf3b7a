package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/todo-cli/internal/database"
	apperrors "github.com/yukikurage/todo-cli/internal/errors"
	"github.com/yukikurage/todo-cli/internal/models"
	"github.com/yukikurage/todo-cli/internal/utils"
	"gorm.io/gorm"
)

// ErrTaskNotFound is returned when no task matches a code
var ErrTaskNotFound = apperrors.NotFound("task not found")

// ErrCompletedNotStored is returned when an update would keep a completed task;
// completed tasks are deleted instead
var ErrCompletedNotStored = apperrors.Validation("completed tasks are deleted, not updated")

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return persistenceError("failed to create task", err)
	}
	return nil
}

// FindByCode finds a task by code
func (r *GormTaskRepository) FindByCode(ctx context.Context, code string) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, persistenceError("failed to find task", err)
	}
	return &task, nil
}

// DeleteByCode hard deletes the task with the given code
func (r *GormTaskRepository) DeleteByCode(ctx context.Context, code string) (int64, error) {
	result := r.db.WithContext(ctx).Where("code = ?", code).Delete(&models.Task{})
	if err := result.Error; err != nil {
		return 0, persistenceError("failed to delete task", err)
	}
	return result.RowsAffected, nil
}

// UpdateByCode loads the task, applies the changes, validates the resulting
// state and writes the changed columns
func (r *GormTaskRepository) UpdateByCode(ctx context.Context, code string, update TaskUpdate) error {
	task, err := r.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if update.IsEmpty() {
		return nil
	}

	if update.Name != nil {
		task.Name = *update.Name
	}
	if update.Detail != nil {
		task.Detail = *update.Detail
	}
	if update.Status != nil {
		task.Status = *update.Status
	}

	task.Normalize()
	if err := task.Validate(); err != nil {
		return err
	}
	if task.Status == models.TaskStatusCompleted {
		return ErrCompletedNotStored
	}

	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("code = ?", code).
		Updates(map[string]interface{}{
			"name":   task.Name,
			"detail": task.Detail,
			"status": task.Status,
		})
	if err := result.Error; err != nil {
		return persistenceError("failed to update task", err)
	}

	return nil
}

// List retrieves tasks with filtering and pagination, newest first
func (r *GormTaskRepository) List(ctx context.Context, filter TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.WithContext(ctx).Model(&models.Task{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, persistenceError("failed to count tasks", err)
	}

	params := utils.NewPaginationParams(filter.Page, filter.PageSize)
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Scopes(database.Paginate(params)).
		Find(&tasks).Error; err != nil {
		return nil, 0, persistenceError("failed to list tasks", err)
	}

	return tasks, total, nil
}

// persistenceError wraps store failures; validation errors raised by model
// hooks pass through unchanged
func persistenceError(message string, err error) error {
	if apperrors.IsValidation(err) {
		return err
	}
	return apperrors.Persistence(message, err)
}
