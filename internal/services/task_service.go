package services

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/yukikurage/todo-cli/internal/errors"
	"github.com/yukikurage/todo-cli/internal/models"
	"github.com/yukikurage/todo-cli/internal/repository"
)

var (
	ErrTaskNotFound           = repository.ErrTaskNotFound
	ErrNoTasksProvided        = apperrors.Validation("at least one task is required")
	ErrAIServiceNotConfigured = apperrors.NewAppError(apperrors.ErrCodeServiceUnavailable, "AI service is not configured")
	ErrAINoTasksGenerated     = apperrors.NewAppError(apperrors.ErrCodeInternalError, "AI did not generate any tasks")
)

// UpdateOutcome tells what UpdateTask did to the stored task
type UpdateOutcome string

const (
	OutcomeUpdated UpdateOutcome = "updated"
	OutcomeDeleted UpdateOutcome = "deleted"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo  repository.TaskRepository
	aiService *AIService
}

// NewTaskService creates a new TaskService. aiService may be nil.
func NewTaskService(taskRepo repository.TaskRepository, aiService *AIService) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		aiService: aiService,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Name   string
	Detail string
	Status models.TaskStatus
}

// UpdateTaskInput represents input for updating a task; nil fields are unchanged
type UpdateTaskInput struct {
	Name   *string
	Detail *string
	Status *models.TaskStatus
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	Status   *models.TaskStatus
	Page     int
	PageSize int
}

// CreateTask validates and persists a single task
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	task := &models.Task{
		Name:   input.Name,
		Detail: input.Detail,
		Status: input.Status,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// CreateTasks persists tasks one by one in input order. The first failure
// stops the batch; tasks created before it stay persisted.
func (s *TaskService) CreateTasks(ctx context.Context, inputs []CreateTaskInput) ([]models.Task, error) {
	if len(inputs) == 0 {
		return nil, ErrNoTasksProvided
	}

	created := make([]models.Task, 0, len(inputs))
	for i, input := range inputs {
		task, err := s.CreateTask(ctx, input)
		if err != nil {
			return created, fmt.Errorf("task %d of %d: %w", i+1, len(inputs), err)
		}
		created = append(created, *task)
	}

	return created, nil
}

// GetTask finds a task by code
func (s *TaskService) GetTask(ctx context.Context, code string) (*models.Task, error) {
	return s.taskRepo.FindByCode(ctx, strings.TrimSpace(code))
}

// DeleteTask removes the task with code and returns the removed count (0 or 1)
func (s *TaskService) DeleteTask(ctx context.Context, code string) (int64, error) {
	return s.taskRepo.DeleteByCode(ctx, strings.TrimSpace(code))
}

// UpdateTask applies input to the task with code. A task moved to completed
// is deleted instead of updated.
func (s *TaskService) UpdateTask(ctx context.Context, code string, input UpdateTaskInput) (UpdateOutcome, error) {
	code = strings.TrimSpace(code)

	if input.Status != nil {
		status := models.TaskStatus(strings.TrimSpace(string(*input.Status)))
		input.Status = &status
	}

	if input.Status != nil && *input.Status == models.TaskStatusCompleted {
		count, err := s.taskRepo.DeleteByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return "", ErrTaskNotFound
		}
		return OutcomeDeleted, nil
	}

	update := repository.TaskUpdate{
		Name:   input.Name,
		Detail: input.Detail,
		Status: input.Status,
	}
	if err := s.taskRepo.UpdateByCode(ctx, code, update); err != nil {
		return "", err
	}

	return OutcomeUpdated, nil
}

// ListTasks returns stored tasks matching input, newest first
func (s *TaskService) ListTasks(ctx context.Context, input ListTasksInput) ([]models.Task, int64, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, 0, apperrors.Validation("status must be one of pending, completed")
	}

	return s.taskRepo.List(ctx, repository.TaskFilter{
		Status:   input.Status,
		Page:     input.Page,
		PageSize: input.PageSize,
	})
}

// SuggestTasks extracts task candidates from free text. Nothing is persisted.
func (s *TaskService) SuggestTasks(ctx context.Context, text string) ([]CreateTaskInput, error) {
	if s.aiService == nil {
		return nil, ErrAIServiceNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.Validation("text is required")
	}

	generated, err := s.aiService.GenerateTasksFromText(ctx, text)
	if err != nil {
		return nil, err
	}

	inputs := make([]CreateTaskInput, 0, len(generated))
	for _, g := range generated {
		name := strings.TrimSpace(g.Name)
		detail := strings.TrimSpace(g.Detail)
		if name == "" {
			continue
		}
		if detail == "" {
			detail = name
		}
		inputs = append(inputs, CreateTaskInput{Name: name, Detail: detail})
	}

	if len(inputs) == 0 {
		return nil, ErrAINoTasksGenerated
	}

	return inputs, nil
}
