package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/yukikurage/todo-cli/internal/commands"
	"github.com/yukikurage/todo-cli/internal/config"
	"github.com/yukikurage/todo-cli/internal/console"
	"github.com/yukikurage/todo-cli/internal/database"
	"github.com/yukikurage/todo-cli/internal/prompt"
	"github.com/yukikurage/todo-cli/internal/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.LoadEnvFiles(); err != nil {
		fmt.Fprintf(os.Stderr, "Something went wrong, Error: %v\n", err)
		return 1
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Something went wrong, Error: %v\n", err)
		return 1
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := commands.NewRunner(
		prompt.NewSurveyPrompter(),
		console.New(os.Stdout),
		database.NewConnector(cfg.Database),
		services.NewAIService(cfg.AI),
	)

	if err := newRootCommand(runner).ExecuteContext(ctx); err != nil {
		slog.Debug("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Something went wrong, Error: %v\n", err)
		return 1
	}
	return 0
}
