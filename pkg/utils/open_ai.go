package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAINarrativeClient implements NarrativeClientInterface using the OpenAI
// chat completion API.
type OpenAINarrativeClient struct {
	client *openai.Client
	model  string
}

func NewOpenAINarrativeClient(apiKey, model string) NarrativeClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAINarrativeClient{client: openai.NewClient(apiKey), model: model}
}

func (c *OpenAINarrativeClient) GenerateIntro(ctx context.Context, guestName string, dayCount int, highlights []string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Write one warm welcome paragraph (max 60 words) for a lodge guest named %q "+
						"starting a %d-day Russian River trip. Mention at most two of these stops: %s. "+
						"No greetings like 'Dear', no sign-off, plain text only.",
					guestName, dayCount, strings.Join(highlights, ", ")),
			},
		},
		Temperature: 0.6,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty openai response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
