package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiCompletionClient is the free-tier alternative to Groq. Forcing the
// JSON response MIME type keeps the output clean, but older models still
// occasionally wrap it in markdown fences, so responses are stripped anyway.
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(apiKey, model string) (*GeminiCompletionClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{client: client, model: model}, nil
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.7)
	m.SetMaxOutputTokens(3000)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", &UpstreamError{Err: fmt.Errorf("gemini: %w", err)}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &UpstreamError{Err: errors.New("no content generated by Gemini")}
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return StripMarkdownFences(content), nil
}

func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}

// StripMarkdownFences removes ```json fences that models emit despite being
// told not to.
func StripMarkdownFences(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}
