// Package llm provides the completion client interface and its provider
// implementations.
package llm

import (
	"context"
	"errors"

	"github.com/ai-universe/assistant-platform/internal/assistant"
)

// Typed completion failures. The chat service matches these with
// errors.Is to decide how to degrade.
var (
	ErrUnauthenticated  = errors.New("completion provider credential missing or invalid")
	ErrRateLimited      = errors.New("completion provider rate limited")
	ErrModelUnavailable = errors.New("completion model unavailable")
	ErrTimeout          = errors.New("completion timed out")
)

// Client is the interface for completion providers. Given an assistant
// configuration and a user message it returns the generated text.
type Client interface {
	Complete(ctx context.Context, cfg assistant.Config, userMessage string) (string, error)
	Name() string
}

// Provider is the type of completion provider.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// NewClient creates a completion client for the given provider.
func NewClient(provider Provider, apiKey string) (Client, error) {
	switch provider {
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey)
	default:
		return NewOpenAIClient(apiKey)
	}
}
