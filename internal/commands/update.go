package commands

import (
	"context"

	apperrors "github.com/yukikurage/todo-cli/internal/errors"
	"github.com/yukikurage/todo-cli/internal/models"
	"github.com/yukikurage/todo-cli/internal/services"
)

// Update edits the task with the code the user enters. Choosing the
// completed status deletes the task.
func (r *Runner) Update(ctx context.Context) error {
	code, err := r.askCode()
	if err != nil {
		return err
	}

	return r.withService(ctx, func(svc *services.TaskService) error {
		r.reporter.Start("Finding the todo...")
		task, err := svc.GetTask(ctx, code)
		r.reporter.Stop()
		if apperrors.IsNotFound(err) {
			r.reporter.Failure("Could not find a Todo with the code you provided.")
			return nil
		}
		if err != nil {
			return err
		}

		r.reporter.Info("Type the updated properties. Press Enter if you don't want to update the data.")
		input, err := r.askUpdate(task)
		if err != nil {
			return err
		}

		if *input.Status == models.TaskStatusCompleted {
			r.reporter.Start("Deleting the todo...")
		} else {
			r.reporter.Start("Updating the todo")
		}
		outcome, err := svc.UpdateTask(ctx, task.Code, input)
		r.reporter.Stop()
		if err != nil {
			return err
		}

		if outcome == services.OutcomeDeleted {
			r.reporter.Success("Deleted the todo.")
		} else {
			r.reporter.Success("Updated the todo.")
		}
		return nil
	})
}

// askUpdate prompts for every mutable field, defaulting to the current values
func (r *Runner) askUpdate(task *models.Task) (services.UpdateTaskInput, error) {
	name, err := r.prompter.Input("Update the name?", task.Name)
	if err != nil {
		return services.UpdateTaskInput{}, err
	}
	detail, err := r.prompter.Input("Update the Description?", task.Detail)
	if err != nil {
		return services.UpdateTaskInput{}, err
	}

	options := make([]string, len(models.TaskStatuses))
	for i, s := range models.TaskStatuses {
		options[i] = string(s)
	}
	answer, err := r.prompter.Select("Update the status", options, string(task.Status))
	if err != nil {
		return services.UpdateTaskInput{}, err
	}
	status, err := models.ParseTaskStatus(answer)
	if err != nil {
		return services.UpdateTaskInput{}, err
	}

	return services.UpdateTaskInput{
		Name:   &name,
		Detail: &detail,
		Status: &status,
	}, nil
}
