package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yukikurage/todo-cli/internal/commands"
	"github.com/yukikurage/todo-cli/internal/constants"
)

// flows is the subset of commands.Runner the command tree dispatches to
type flows interface {
	Add(ctx context.Context) error
	Update(ctx context.Context) error
	Delete(ctx context.Context) error
	List(ctx context.Context, opts commands.ListOptions) error
	Suggest(ctx context.Context, text string) error
}

func newRootCommand(f flows) *cobra.Command {
	root := &cobra.Command{
		Use:           "todo",
		Short:         "Manage your todos from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "add",
			Short: "Add one or more tasks",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return f.Add(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "update",
			Short: "Update a task by its code; completing it deletes it",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return f.Update(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "delete",
			Short: "Delete a task by its code",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return f.Delete(cmd.Context())
			},
		},
		newListCommand(f),
		&cobra.Command{
			Use:   "suggest <text>",
			Short: "Suggest tasks from free text and add the ones you keep",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return f.Suggest(cmd.Context(), strings.Join(args, " "))
			},
		},
	)

	return root
}

func newListCommand(f flows) *cobra.Command {
	var opts commands.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.List(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "only show tasks with this status (pending or completed)")
	cmd.Flags().IntVar(&opts.Page, "page", constants.MinPageSize, "page number")
	cmd.Flags().IntVar(&opts.Limit, "limit", constants.DefaultPageSize, "tasks per page")

	return cmd
}
