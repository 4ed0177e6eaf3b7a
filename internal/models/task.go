package models

import (
	"strings"
	"time"

	apperrors "github.com/yukikurage/todo-cli/internal/errors"
	"github.com/yukikurage/todo-cli/internal/utils"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// TaskStatuses lists the allowed statuses in prompt order
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusCompleted}

// IsValid reports whether s is one of the enumerated statuses
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusCompleted:
		return true
	}
	return false
}

// ParseTaskStatus trims and validates a status; empty input yields pending
func ParseTaskStatus(raw string) (TaskStatus, error) {
	status := TaskStatus(strings.TrimSpace(raw))
	if status == "" {
		return TaskStatusPending, nil
	}
	if !status.IsValid() {
		return "", apperrors.Validation("status must be one of pending, completed")
	}
	return status, nil
}

type Task struct {
	ID        uint64     `gorm:"primarykey" json:"-"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Detail    string     `gorm:"type:text;not null" json:"detail"`
	Status    TaskStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Code      string     `gorm:"<-:create;type:varchar(32);uniqueIndex;not null" json:"code"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Normalize trims the text fields
func (t *Task) Normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.Detail = strings.TrimSpace(t.Detail)
	t.Status = TaskStatus(strings.TrimSpace(string(t.Status)))
}

// Validate checks the entity constraints
func (t *Task) Validate() error {
	if t.Name == "" {
		return apperrors.Validation("name is required")
	}
	if t.Detail == "" {
		return apperrors.Validation("detail is required")
	}
	if !t.Status.IsValid() {
		return apperrors.Validation("status must be one of pending, completed")
	}
	return nil
}

// BeforeCreate normalizes, defaults status, assigns a fresh code and validates.
// The code is always generated here; callers cannot supply one.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	t.Normalize()
	if t.Status == "" {
		t.Status = TaskStatusPending
	}
	if err := t.Validate(); err != nil {
		return err
	}
	t.Code = utils.GenerateTaskCode()
	return nil
}
