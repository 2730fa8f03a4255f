package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var (
	ErrAIEmptyResponse = errors.New("no response from OpenAI")
)

// GeneratedTask is a task suggestion. It is never persisted.
type GeneratedTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectBrief is the project context handed to the generator.
type ProjectBrief struct {
	Name        string
	Description string
}

// TaskGenerator drafts tasks from free text.
type TaskGenerator interface {
	GenerateTasks(ctx context.Context, project ProjectBrief, text string) ([]GeneratedTask, error)
}

// AIService is the OpenAI backed TaskGenerator.
type AIService struct {
	client *openai.Client
	model  string
}

// NewAIService creates an AIService talking to the public OpenAI API.
func NewAIService(apiKey string) *AIService {
	return NewAIServiceWithConfig(openai.DefaultConfig(apiKey))
}

// NewAIServiceWithConfig creates an AIService from a client config, for example one
// pointing at a proxy.
func NewAIServiceWithConfig(cfg openai.ClientConfig) *AIService {
	return &AIService{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.GPT4o,
	}
}

const generatePrompt = `You are a task extraction assistant for a project management tool.
Break the text below into concrete, assignable tasks for the project.

Project: %s
Project description: %s

Text:
%s

Reply with a JSON array only, no prose:
[
  {
    "title": "short task title",
    "description": "what has to be done"
  }
]
Return [] if the text contains no tasks.`

// GenerateTasks analyzes text and extracts tasks using OpenAI GPT
func (s *AIService) GenerateTasks(ctx context.Context, project ProjectBrief, text string) ([]GeneratedTask, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: fmt.Sprintf(generatePrompt, project.Name, project.Description, text),
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrAIEmptyResponse
	}

	return parseGeneratedTasks(resp.Choices[0].Message.Content)
}

// parseGeneratedTasks decodes the model reply, tolerating a fenced code block.
func parseGeneratedTasks(content string) ([]GeneratedTask, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	var tasks []GeneratedTask
	if err := json.Unmarshal([]byte(content), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	return tasks, nil
}
