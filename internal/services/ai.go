package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/todo-cli/internal/config"
	"github.com/yukikurage/todo-cli/internal/constants"
)

type AIService struct {
	client *openai.Client
	model  string
}

type GeneratedTask struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// NewAIService returns nil when no API key is configured
func NewAIService(cfg config.AIConfig) *AIService {
	if cfg.APIKey == "" {
		return nil
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4o
	}

	return &AIService{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// GenerateTasksFromText analyzes text and extracts todo items using the chat completion API
func (s *AIService) GenerateTasksFromText(ctx context.Context, text string) ([]GeneratedTask, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You extract todo items from free text.

Text:
%s

Return a JSON array of at most %d objects:
[
  {
    "name": "short title of the task",
    "detail": "one sentence describing what has to be done"
  }
]

Rules:
- Return [] when the text contains no tasks
- Return only JSON, no explanations or code fences`, text, constants.MaxSuggestedTasks)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := stripCodeFence(resp.Choices[0].Message.Content)

	var tasks []GeneratedTask
	if err := json.Unmarshal([]byte(content), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	if len(tasks) > constants.MaxSuggestedTasks {
		tasks = tasks[:constants.MaxSuggestedTasks]
	}

	return tasks, nil
}

// stripCodeFence removes a surrounding ```json fence some models add anyway
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimPrefix(content, "json")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
