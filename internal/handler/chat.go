package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ai-universe/assistant-platform/internal/assistant"
	"github.com/ai-universe/assistant-platform/internal/middleware"
	"github.com/ai-universe/assistant-platform/internal/model"
	"github.com/ai-universe/assistant-platform/internal/service"
	"github.com/ai-universe/assistant-platform/pkg/logger"
)

// ChatHandler handles chat endpoints.
type ChatHandler struct {
	registry *assistant.Registry
	service  *service.ChatService
	logger   *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(registry *assistant.Registry, svc *service.ChatService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		registry: registry,
		service:  svc,
		logger:   log,
	}
}

// ChatByKey handles POST /chat/{assistant_key}
func (h *ChatHandler) ChatByKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "assistant_key")

	cfg, err := h.registry.Resolve(key)
	if err != nil {
		respondError(w, http.StatusNotFound, "invalid_ai_type", fmt.Sprintf("AI type '%s' not found", key))
		return
	}

	h.chat(w, r, cfg)
}

// ChatByID handles POST /ai/{assistant_id}
func (h *ChatHandler) ChatByID(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "assistant_id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusNotFound, "invalid_ai_id", fmt.Sprintf("AI ID '%s' not found", raw))
		return
	}

	cfg, err := h.registry.ResolveID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "invalid_ai_id", fmt.Sprintf("AI ID '%d' not found", id))
		return
	}

	h.chat(w, r, cfg)
}

func (h *ChatHandler) chat(w http.ResponseWriter, r *http.Request, cfg assistant.Config) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "Invalid request body")
		return
	}

	// Empty fields fall through to the service's missing_* errors;
	// non-empty ones are bounds-checked here.
	if req.UserID != "" {
		if err := middleware.ValidateUserID(req.UserID); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_user_id", err.Error())
			return
		}
	}
	if req.Message != "" {
		if err := middleware.ValidateMessageContent(req.Message); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_message", err.Error())
			return
		}
	}

	result, err := h.service.Chat(r.Context(), cfg, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingUserID):
			respondError(w, http.StatusBadRequest, "missing_user_id", "User ID is required")
		case errors.Is(err, service.ErrMissingMessage):
			respondError(w, http.StatusBadRequest, "missing_message", "Message is required")
		default:
			h.logger.Error("chat failed",
				zap.String("assistant", cfg.Key),
				zap.String("correlation_id", middleware.GetCorrelationID(r.Context())),
				zap.Error(err),
			)
			respondError(w, http.StatusInternalServerError, "chat_failed", err.Error())
		}
		return
	}

	respondSuccess(w, result.Reply, result.ConversationID)
}
