package llms

import (
	"context"
	"fmt"

	openai "github.com/meguminnnnnnnnn/go-openai"
)

// OpenAIChat is a chat-completion client for the OpenAI API.
type OpenAIChat struct {
	client *openai.Client
	model  string
}

// NewOpenAIChat creates a new chat client for the given model name.
func NewOpenAIChat(apiKey, modelName string) *OpenAIChat {
	config := openai.DefaultConfig(apiKey)
	return &OpenAIChat{
		client: openai.NewClientWithConfig(config),
		model:  modelName,
	}
}

// Generate sends a single-prompt completion request and returns the model's
// text output verbatim.
func (o *OpenAIChat) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
