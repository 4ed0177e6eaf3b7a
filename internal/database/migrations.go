package database

import (
	"log/slog"

	apperrors "github.com/yukikurage/todo-cli/internal/errors"
	"github.com/yukikurage/todo-cli/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the task table and its indexes
func Migrate(db *gorm.DB) error {
	slog.Debug("running database migrations")
	if err := db.AutoMigrate(&models.Task{}); err != nil {
		return apperrors.Persistence("failed to run migrations", err)
	}
	slog.Debug("database migrations completed")
	return nil
}
