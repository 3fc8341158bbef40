package utils

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	defaultGroqModel = "llama-3.3-70b-versatile"

	// Itinerary generation needs a long ceiling; the model regularly takes
	// tens of seconds to emit a full multi-day plan.
	completionTimeout = 60 * time.Second
)

// GroqCompletionClient talks to Groq's OpenAI-compatible chat-completion
// endpoint. Sampling parameters are fixed: temperature 0.7 (output is
// expected to vary run to run), a 3000-token ceiling, and a JSON-object
// response format hint.
type GroqCompletionClient struct {
	client *openai.Client
	model  string
}

func NewGroqCompletionClient(apiKey, model string) *GroqCompletionClient {
	if model == "" {
		model = defaultGroqModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	cfg.HTTPClient = &http.Client{Timeout: completionTimeout}

	return &GroqCompletionClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *GroqCompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   3000,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", wrapCompletionError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Err: errors.New("no choices in completion response")}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func wrapCompletionError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamError{StatusCode: reqErr.HTTPStatusCode, Err: err}
	}
	return &UpstreamError{Err: err}
}
