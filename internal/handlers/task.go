package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-cli/internal/dto"
	apperrors "github.com/yukikurage/todo-cli/internal/errors"
	"github.com/yukikurage/todo-cli/internal/middleware"
	"github.com/yukikurage/todo-cli/internal/models"
	"github.com/yukikurage/todo-cli/internal/services"
	"github.com/yukikurage/todo-cli/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns stored tasks, newest first
// Can filter by status
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	input := services.ListTasksInput{Page: params.Page, PageSize: params.Limit}
	if raw := c.Query("status"); raw != "" {
		status := models.TaskStatus(raw)
		input.Status = &status
	}

	tasks, total, err := h.taskService.ListTasks(c.Request.Context(), input)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params, total))
}

// GetTask returns the task loaded by RequireTask
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apperrors.InternalError(c, "Task not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(task))
}

// CreateTask creates one task, or several in order when the body has a tasks array
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Tasks != nil {
		h.createTasks(c, req.Tasks)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), req.ToCreateTaskInput())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// createTasks stops at the first failing task; earlier tasks stay created
func (h *TaskHandler) createTasks(c *gin.Context, reqs []dto.CreateTaskRequest) {
	inputs := make([]services.CreateTaskInput, len(reqs))
	for i, req := range reqs {
		inputs[i] = req.ToCreateTaskInput()
	}

	created, err := h.taskService.CreateTasks(c.Request.Context(), inputs)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"tasks": dto.ToTaskDTOs(created),
	})
}

// UpdateTask updates the provided fields. Setting status to completed deletes the task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apperrors.InternalError(c, "Task not found in context")
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	outcome, err := h.taskService.UpdateTask(c.Request.Context(), task.Code, req.ToUpdateTaskInput())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if outcome == services.OutcomeDeleted {
		c.JSON(http.StatusOK, dto.UpdateTaskResponse{Outcome: outcome})
		return
	}

	updated, err := h.taskService.GetTask(c.Request.Context(), task.Code)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	taskDTO := dto.ToTaskDTO(*updated)
	c.JSON(http.StatusOK, dto.UpdateTaskResponse{Outcome: outcome, Task: &taskDTO})
}

// DeleteTask deletes a task by code
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	count, err := h.taskService.DeleteTask(c.Request.Context(), c.Param("code"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if count == 0 {
		apperrors.NotFoundResponse(c, "Task not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted": count,
	})
}

// SuggestTasks extracts task candidates from text using AI. Nothing is stored.
func (h *TaskHandler) SuggestTasks(c *gin.Context) {
	var req dto.SuggestTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	inputs, err := h.taskService.SuggestTasks(c.Request.Context(), req.Text)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	suggestions := make([]dto.SuggestedTaskDTO, len(inputs))
	for i, input := range inputs {
		suggestions[i] = dto.SuggestedTaskDTO{Name: input.Name, Detail: input.Detail}
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": suggestions,
	})
}
