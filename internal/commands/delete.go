package commands

import (
	"context"
	"strings"

	"github.com/yukikurage/todo-cli/internal/services"
)

// Delete removes the task with the code the user enters. An unknown code is
// reported, not returned as an error.
func (r *Runner) Delete(ctx context.Context) error {
	code, err := r.askCode()
	if err != nil {
		return err
	}

	return r.withService(ctx, func(svc *services.TaskService) error {
		r.reporter.Start("Finding and Deleting the todo...")
		count, err := svc.DeleteTask(ctx, code)
		r.reporter.Stop()
		if err != nil {
			return err
		}

		if count == 0 {
			r.reporter.Failure("Could not find any todo matching the provided code. Deletion failed.")
			return nil
		}
		r.reporter.Success("Deleted Task Successfully")
		return nil
	})
}

func (r *Runner) askCode() (string, error) {
	code, err := r.prompter.Input("Enter the code of the todo:", "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(code), nil
}
