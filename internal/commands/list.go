package commands

import (
	"context"

	"github.com/yukikurage/todo-cli/internal/models"
	"github.com/yukikurage/todo-cli/internal/services"
)

// ListOptions filters the list flow
type ListOptions struct {
	Status string
	Page   int
	Limit  int
}

// List prints stored tasks, newest first
func (r *Runner) List(ctx context.Context, opts ListOptions) error {
	input := services.ListTasksInput{Page: opts.Page, PageSize: opts.Limit}
	if opts.Status != "" {
		status, err := models.ParseTaskStatus(opts.Status)
		if err != nil {
			return err
		}
		input.Status = &status
	}

	return r.withService(ctx, func(svc *services.TaskService) error {
		r.reporter.Start("Fetching the todos...")
		tasks, total, err := svc.ListTasks(ctx, input)
		r.reporter.Stop()
		if err != nil {
			return err
		}

		if total == 0 {
			r.reporter.Info("No todos found.")
			return nil
		}

		rows := make([][]string, 0, len(tasks))
		for _, task := range tasks {
			rows = append(rows, []string{task.Code, string(task.Status), task.Name, task.Detail})
		}
		r.reporter.Table([]string{"Code", "Status", "Name", "Detail"}, rows)
		r.reporter.Printf("%d of %d todos\n", len(tasks), total)
		return nil
	})
}
