package commands

import (
	"context"
	"fmt"

	"github.com/yukikurage/todo-cli/internal/services"
)

// Suggest extracts tasks from text, lets the user pick which to keep and
// creates the kept ones
func (r *Runner) Suggest(ctx context.Context, text string) error {
	if r.aiService == nil {
		return services.ErrAIServiceNotConfigured
	}

	return r.withService(ctx, func(svc *services.TaskService) error {
		r.reporter.Start("Asking for suggestions...")
		suggestions, err := svc.SuggestTasks(ctx, text)
		r.reporter.Stop()
		if err != nil {
			return err
		}

		var keep []services.CreateTaskInput
		for _, s := range suggestions {
			r.reporter.Printf("%s: %s\n", s.Name, s.Detail)
			ok, err := r.prompter.Confirm("Add this task?", true)
			if err != nil {
				return err
			}
			if ok {
				keep = append(keep, s)
			}
		}

		if len(keep) == 0 {
			r.reporter.Info(fmt.Sprintf("Skipped all %d suggestions.", len(suggestions)))
			return nil
		}
		return r.createTasks(ctx, svc, keep)
	})
}
