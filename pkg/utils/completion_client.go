package utils

import (
	"context"
	"fmt"
)

// CompletionClientInterface is the chat-completion boundary used by the
// generation pipeline. Implementations return the raw model text; callers
// own JSON parsing and validation.
type CompletionClientInterface interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// NewCompletionClient selects a provider by name. "groq" is the default;
// "gemini" is kept as the free-tier fallback.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch provider {
	case "", "groq":
		return NewGroqCompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unknown completion provider %q", provider)
	}
}
