package constants

// Task codes
const (
	TaskCodeLength    = 10
	MaxTaskCodeLength = 32
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Context keys
const (
	ContextKeyTask = "task"
)

// Suggestions
const (
	MaxSuggestedTasks = 20
)
