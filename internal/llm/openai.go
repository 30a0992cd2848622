package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/ai-universe/assistant-platform/internal/assistant"
)

const defaultCompletionTimeout = 30 * time.Second

// OpenAIClient is the OpenAI completion client.
type OpenAIClient struct {
	client  *openai.Client
	timeout time.Duration
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		timeout: defaultCompletionTimeout,
	}, nil
}

// WithTimeout sets the per-request completion deadline.
func (c *OpenAIClient) WithTimeout(d time.Duration) *OpenAIClient {
	if d > 0 {
		c.timeout = d
	}
	return c
}

// Name returns the provider name.
func (c *OpenAIClient) Name() string {
	return "openai"
}

// Complete sends a single-turn completion request using the assistant's
// system prompt and sampling parameters.
func (c *OpenAIClient) Complete(ctx context.Context, cfg assistant.Config, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := cfg.Model
	if model == "" {
		model = openai.GPT4
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2000
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: cfg.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		MaxTokens:        maxTokens,
		Temperature:      cfg.Temperature,
		TopP:             cfg.TopP,
		FrequencyPenalty: cfg.FrequencyPenalty,
		PresencePenalty:  cfg.PresencePenalty,
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choice list", ErrModelUnavailable)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// classifyOpenAIError converts provider errors into the package's typed
// failures so callers never see raw SDK errors.
func classifyOpenAIError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 401, 403:
			return fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		case 429:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case 404, 503:
			return fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
	}

	return err
}
