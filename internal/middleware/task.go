package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-cli/internal/constants"
	apperrors "github.com/yukikurage/todo-cli/internal/errors"
	"github.com/yukikurage/todo-cli/internal/models"
	"github.com/yukikurage/todo-cli/internal/services"
	"github.com/yukikurage/todo-cli/internal/utils"
)

// RequireTask loads the task named by the :code parameter into the context
func RequireTask(taskService *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		if !utils.IsValidTaskCode(code) {
			apperrors.NotFoundResponse(c, "Task not found")
			c.Abort()
			return
		}

		task, err := taskService.GetTask(c.Request.Context(), code)
		if err != nil {
			apperrors.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTask, *task)
		c.Next()
	}
}

// GetTask returns the task set by RequireTask
func GetTask(c *gin.Context) (models.Task, bool) {
	value, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		return models.Task{}, false
	}
	task, ok := value.(models.Task)
	return task, ok
}
