// Package service orchestrates chat round-trips between the transport
// layer, the completion clients, and the conversation store.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ai-universe/assistant-platform/internal/assistant"
	"github.com/ai-universe/assistant-platform/internal/llm"
	"github.com/ai-universe/assistant-platform/internal/model"
	"github.com/ai-universe/assistant-platform/internal/store"
	"github.com/ai-universe/assistant-platform/pkg/logger"
	"github.com/ai-universe/assistant-platform/pkg/metrics"
)

// Validation errors returned before any upstream or storage work.
var (
	ErrMissingUserID  = errors.New("user id is required")
	ErrMissingMessage = errors.New("message is required")
)

// ChatService drives one chat round-trip: validate, complete against
// the upstream model, persist, respond.
type ChatService struct {
	store  *store.DB
	client llm.Client
	logger *logger.Logger
}

// NewChatService creates a chat service.
func NewChatService(db *store.DB, client llm.Client, log *logger.Logger) *ChatService {
	return &ChatService{store: db, client: client, logger: log}
}

// Chat answers one user message with the given assistant. A completion
// failure degrades to a canned reply, and a persistence failure after a
// successful completion is reported as a warning. Either way the caller
// gets an answer; only validation failures return an error.
func (s *ChatService) Chat(ctx context.Context, cfg assistant.Config, req model.ChatRequest) (*model.ChatResult, error) {
	userID := strings.TrimSpace(req.UserID)
	message := strings.TrimSpace(req.Message)
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if message == "" {
		return nil, ErrMissingMessage
	}

	result := &model.ChatResult{}

	start := time.Now()
	reply, err := s.client.Complete(ctx, cfg, message)
	if err != nil {
		reply = degradedReply(err)
		result.Degraded = true
		metrics.RecordCompletion(s.client.Name(), "error", time.Since(start).Seconds())
		metrics.DegradedResponsesTotal.WithLabelValues(cfg.Key, degradedReason(err)).Inc()
		s.logger.Warn("completion failed, serving degraded reply",
			zap.String("assistant", cfg.Key),
			zap.String("user_id", userID),
			zap.Error(err),
		)
	} else {
		metrics.RecordCompletion(s.client.Name(), "ok", time.Since(start).Seconds())
	}
	result.Reply = reply

	convID, err := s.persist(ctx, cfg.Key, userID, req.ConversationID, message, reply)
	if err != nil {
		result.PersistWarning = true
		result.ConversationID = strings.TrimSpace(req.ConversationID)
		s.logger.Error("failed to persist chat round-trip",
			zap.String("assistant", cfg.Key),
			zap.String("user_id", userID),
			zap.Error(err),
		)
	} else {
		result.ConversationID = convID
	}

	outcome := "ok"
	if result.Degraded {
		outcome = "degraded"
	}
	metrics.ChatRoundTripsTotal.WithLabelValues(cfg.Key, outcome).Inc()

	return result, nil
}

func (s *ChatService) persist(ctx context.Context, aiType, userID, conversationID, message, reply string) (string, error) {
	convID, err := s.store.StartOrGetConversation(ctx, strings.TrimSpace(conversationID), userID, aiType, message)
	if err != nil {
		metrics.RecordStoreError("start_conversation")
		return "", fmt.Errorf("start conversation: %w", err)
	}

	if _, err := s.store.AppendMessage(ctx, convID, userID, message, reply); err != nil {
		metrics.RecordStoreError("append_message")
		return "", fmt.Errorf("append message: %w", err)
	}

	if err := s.store.BumpUsage(ctx, userID, aiType); err != nil {
		metrics.RecordStoreError("bump_usage")
		return "", fmt.Errorf("bump usage: %w", err)
	}

	return convID, nil
}

// degradedReply maps an upstream failure to the canned answer the user
// sees instead of an error page.
func degradedReply(err error) string {
	switch {
	case errors.Is(err, llm.ErrUnauthenticated):
		return "Sorry, there is a problem with the AI service credentials. Please contact the administrator."
	case errors.Is(err, llm.ErrRateLimited):
		return "Sorry, the request limit has been reached. Please try again later."
	case errors.Is(err, llm.ErrModelUnavailable):
		return "Sorry, the requested AI model is not available."
	case errors.Is(err, llm.ErrTimeout):
		return "Sorry, the AI service took too long to answer. Please try again."
	default:
		return "Sorry, something went wrong. Please try again."
	}
}

func degradedReason(err error) string {
	switch {
	case errors.Is(err, llm.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, llm.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, llm.ErrModelUnavailable):
		return "model_unavailable"
	case errors.Is(err, llm.ErrTimeout):
		return "timeout"
	default:
		return "upstream_error"
	}
}
