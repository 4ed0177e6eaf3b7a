package utils

import (
	"testing"

	"github.com/yukikurage/todo-cli/internal/constants"
)

func TestGenerateTaskCode(t *testing.T) {
	code := GenerateTaskCode()

	if len(code) != constants.TaskCodeLength {
		t.Errorf("GenerateTaskCode() length = %d, want %d", len(code), constants.TaskCodeLength)
	}
	if !IsValidTaskCode(code) {
		t.Errorf("GenerateTaskCode() generated invalid code: %s", code)
	}
}

func TestGenerateTaskCode_Uniqueness(t *testing.T) {
	codes := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		code := GenerateTaskCode()
		if codes[code] {
			t.Fatalf("GenerateTaskCode() generated duplicate code: %s", code)
		}
		codes[code] = true
	}
}

func TestIsValidTaskCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{name: "alphanumeric", code: "abcDEF1234", valid: true},
		{name: "url safe symbols", code: "a_b-c_d-e1", valid: true},
		{name: "max length", code: "12345678901234567890123456789012", valid: true},
		{name: "empty", code: "", valid: false},
		{name: "too long", code: "123456789012345678901234567890123", valid: false},
		{name: "space", code: "abc 123", valid: false},
		{name: "special", code: "abc@123", valid: false},
		{name: "unicode", code: "abc日本語", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTaskCode(tt.code); got != tt.valid {
				t.Errorf("IsValidTaskCode(%q) = %v, want %v", tt.code, got, tt.valid)
			}
		})
	}
}

func TestNewPaginationParams(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        PaginationParams
	}{
		{"defaults on zero", 0, 0, PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0}},
		{"second page", 2, 10, PaginationParams{Page: 2, Limit: 10, Offset: 10}},
		{"limit too large", 1, constants.MaxPageSize + 1, PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPaginationParams(tt.page, tt.limit); got != tt.want {
				t.Errorf("NewPaginationParams(%d, %d) = %+v, want %+v", tt.page, tt.limit, got, tt.want)
			}
		})
	}
}

func BenchmarkGenerateTaskCode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = GenerateTaskCode()
	}
}
