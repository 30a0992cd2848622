package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/ai-universe/assistant-platform/internal/assistant"
)

const anthropicDefaultModel = "claude-3-5-sonnet-20241022"

// AnthropicClient is the Anthropic completion client.
type AnthropicClient struct {
	client  *anthropic.Client
	timeout time.Duration
}

// NewAnthropicClient creates a new Anthropic client.
func NewAnthropicClient(apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}

	return &AnthropicClient{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		timeout: defaultCompletionTimeout,
	}, nil
}

// WithTimeout sets the per-request completion deadline.
func (c *AnthropicClient) WithTimeout(d time.Duration) *AnthropicClient {
	if d > 0 {
		c.timeout = d
	}
	return c
}

// Name returns the provider name.
func (c *AnthropicClient) Name() string {
	return "anthropic"
}

// Complete sends a single-turn completion request. Assistant configs
// carry OpenAI model names, so anything that is not a claude model maps
// to the provider default.
func (c *AnthropicClient) Complete(ctx context.Context, cfg assistant.Config, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := cfg.Model
	if !strings.HasPrefix(model, "claude") {
		model = anthropicDefaultModel
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2000
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.F(model),
		MaxTokens: anthropic.F(int64(maxTokens)),
		System: anthropic.F([]anthropic.TextBlockParam{
			{
				Type: anthropic.F(anthropic.TextBlockParamTypeText),
				Text: anthropic.F(cfg.SystemPrompt),
			},
		}),
		Temperature: anthropic.F(float64(cfg.Temperature)),
		TopP:        anthropic.F(float64(cfg.TopP)),
		Messages: anthropic.F([]anthropic.MessageParam{
			{
				Role: anthropic.F(anthropic.MessageParamRoleUser),
				Content: anthropic.F([]anthropic.MessageParamContentUnion{
					anthropic.TextBlockParam{
						Type: anthropic.F(anthropic.TextBlockParamTypeText),
						Text: anthropic.F(userMessage),
					},
				}),
			},
		}),
	})
	if err != nil {
		return "", classifyAnthropicError(err)
	}

	var content strings.Builder
	for _, block := range resp.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			content.WriteString(block.Text)
		}
	}

	return strings.TrimSpace(content.String()), nil
}

// classifyAnthropicError maps Anthropic failures onto the typed errors.
// The SDK does not expose stable error types at this version, so the
// mapping goes by status text.
func classifyAnthropicError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "authentication") || strings.Contains(msg, "api key"):
		return fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case strings.Contains(msg, "529") || strings.Contains(msg, "overloaded") || strings.Contains(msg, "not_found"):
		return fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	return err
}
