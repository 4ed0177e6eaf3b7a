package dto

import (
	"strings"
	"time"

	"github.com/yukikurage/todo-cli/internal/models"
	"github.com/yukikurage/todo-cli/internal/services"
	"github.com/yukikurage/todo-cli/internal/utils"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	Code      string            `json:"code"`
	Name      string            `json:"name"`
	Detail    string            `json:"detail"`
	Status    models.TaskStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO                `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// UpdateTaskResponse reports what a PATCH did; Task is omitted when the task was deleted
type UpdateTaskResponse struct {
	Outcome services.UpdateOutcome `json:"outcome"`
	Task    *TaskDTO               `json:"task,omitempty"`
}

// SuggestedTaskDTO is a task candidate that has not been stored
type SuggestedTaskDTO struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// CreateTaskRequest is the body of a single task creation
type CreateTaskRequest struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Status string `json:"status"`
}

// CreateTasksRequest is either a single task or a tasks array created in order
type CreateTasksRequest struct {
	CreateTaskRequest
	Tasks []CreateTaskRequest `json:"tasks"`
}

// UpdateTaskRequest holds the optional fields of a PATCH
type UpdateTaskRequest struct {
	Name   *string `json:"name"`
	Detail *string `json:"detail"`
	Status *string `json:"status"`
}

// SuggestTasksRequest is the body of a suggestion request
type SuggestTasksRequest struct {
	Text string `json:"text" binding:"required"`
}

// Conversion functions

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		Code:      task.Code,
		Name:      task.Name,
		Detail:    task.Detail,
		Status:    task.Status,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}

// ToTaskListResponse converts a page of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, params utils.PaginationParams, total int64) TaskListResponse {
	return TaskListResponse{
		Tasks: ToTaskDTOs(tasks),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}

// ToCreateTaskInput converts a request into service input. An unknown status
// is passed through so the model rejects it.
func (r CreateTaskRequest) ToCreateTaskInput() services.CreateTaskInput {
	return services.CreateTaskInput{
		Name:   r.Name,
		Detail: r.Detail,
		Status: models.TaskStatus(r.Status),
	}
}

// ToUpdateTaskInput converts a PATCH body into service input
func (r UpdateTaskRequest) ToUpdateTaskInput() services.UpdateTaskInput {
	input := services.UpdateTaskInput{
		Name:   r.Name,
		Detail: r.Detail,
	}
	if r.Status != nil {
		status := models.TaskStatus(strings.TrimSpace(*r.Status))
		input.Status = &status
	}
	return input
}
