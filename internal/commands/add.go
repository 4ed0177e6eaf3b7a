package commands

import (
	"context"

	"github.com/yukikurage/todo-cli/internal/services"
)

// Add collects tasks until the user stops, then creates them in order
func (r *Runner) Add(ctx context.Context) error {
	inputs, err := r.askTasks()
	if err != nil {
		return err
	}

	return r.withService(ctx, func(svc *services.TaskService) error {
		return r.createTasks(ctx, svc, inputs)
	})
}

func (r *Runner) createTasks(ctx context.Context, svc *services.TaskService, inputs []services.CreateTaskInput) error {
	r.reporter.Start("Creating the todos...")
	created, err := svc.CreateTasks(ctx, inputs)
	r.reporter.Stop()
	if err != nil {
		return err
	}

	r.reporter.Success("Created the todos!")
	for _, task := range created {
		r.reporter.Printf("  %s  %s\n", task.Code, task.Name)
	}
	return nil
}

func (r *Runner) askTasks() ([]services.CreateTaskInput, error) {
	var inputs []services.CreateTaskInput

	for {
		name, err := r.prompter.Input("Enter name of the task:", "")
		if err != nil {
			return nil, err
		}
		detail, err := r.prompter.Input("Enter the details of the task:", "")
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, services.CreateTaskInput{Name: name, Detail: detail})

		more, err := r.prompter.Confirm("Do you want to add more tasks?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			return inputs, nil
		}
	}
}
