package utils

import (
	"fmt"

	nanoid "github.com/jaevor/go-nanoid"
	"github.com/yukikurage/todo-cli/internal/constants"
)

var newTaskCode func() string

func init() {
	gen, err := nanoid.Standard(constants.TaskCodeLength)
	if err != nil {
		panic(fmt.Sprintf("utils: nanoid generator: %v", err))
	}
	newTaskCode = gen
}

// GenerateTaskCode returns a fresh random task code of constants.TaskCodeLength characters
func GenerateTaskCode() string {
	return newTaskCode()
}

// IsValidTaskCode checks that a code is non-empty, bounded and uses the URL-safe nanoid alphabet
func IsValidTaskCode(code string) bool {
	if code == "" || len(code) > constants.MaxTaskCodeLength {
		return false
	}

	for _, c := range code {
		if !isCodeChar(c) {
			return false
		}
	}
	return true
}

func isCodeChar(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_' || c == '-'
}
