// Package commands implements the interactive todo flows. Each flow collects
// input, opens its own database session, performs the task operations and
// reports the outcome.
package commands

import (
	"context"

	"github.com/yukikurage/todo-cli/internal/database"
	"github.com/yukikurage/todo-cli/internal/repository"
	"github.com/yukikurage/todo-cli/internal/services"
)

// Prompter supplies answers to interactive questions
type Prompter interface {
	Input(message, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
	Select(message string, options []string, defaultValue string) (string, error)
}

// Reporter receives human readable progress and outcome messages
type Reporter interface {
	Start(text string)
	Stop()
	Success(msg string)
	Failure(msg string)
	Info(msg string)
	Printf(format string, args ...interface{})
	Table(header []string, rows [][]string)
}

// Runner wires the flows to their collaborators
type Runner struct {
	prompter  Prompter
	reporter  Reporter
	connector database.Connector
	aiService *services.AIService
}

// NewRunner creates a Runner. aiService may be nil.
func NewRunner(prompter Prompter, reporter Reporter, connector database.Connector, aiService *services.AIService) *Runner {
	return &Runner{
		prompter:  prompter,
		reporter:  reporter,
		connector: connector,
		aiService: aiService,
	}
}

// withService runs fn against a task service bound to a fresh session
func (r *Runner) withService(ctx context.Context, fn func(*services.TaskService) error) error {
	return database.WithSession(ctx, r.connector, func(s *database.Session) error {
		return fn(services.NewTaskService(repository.NewTaskRepository(s.DB()), r.aiService))
	})
}
