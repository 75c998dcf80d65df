package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiNarrativeClient implements NarrativeClientInterface using Google's
// Gemini models.
type GeminiNarrativeClient struct {
	client *genai.Client
	model  string
}

func NewGeminiNarrativeClient(apiKey, model string) (NarrativeClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiNarrativeClient{client: client, model: model}, nil
}

func (c *GeminiNarrativeClient) GenerateIntro(ctx context.Context, guestName string, dayCount int, highlights []string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.6)

	prompt := fmt.Sprintf(
		"Write one warm welcome paragraph (max 60 words) for a lodge guest named %q "+
			"starting a %d-day Russian River trip. Mention at most two of these stops: %s. "+
			"No greetings like 'Dear', no sign-off, plain text only.",
		guestName, dayCount, strings.Join(highlights, ", "))

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty gemini response")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String()), nil
}
