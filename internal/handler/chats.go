package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ai-universe/assistant-platform/internal/middleware"
	"github.com/ai-universe/assistant-platform/internal/model"
	"github.com/ai-universe/assistant-platform/internal/store"
	"github.com/ai-universe/assistant-platform/pkg/logger"
	"github.com/ai-universe/assistant-platform/pkg/metrics"
)

// ChatsHandler handles conversation management endpoints.
type ChatsHandler struct {
	store  *store.DB
	logger *logger.Logger
}

// NewChatsHandler creates a new chats handler.
func NewChatsHandler(db *store.DB, log *logger.Logger) *ChatsHandler {
	return &ChatsHandler{
		store:  db,
		logger: log,
	}
}

func conversationLine(c model.Conversation) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s", c.ID, c.AIType, c.Title, formatTime(c.CreatedAt), formatTime(c.UpdatedAt))
}

func messageLine(m model.Message) string {
	return fmt.Sprintf("MSG:%s|%s|%s|%s", m.ID, m.Content, m.AIResponse, formatTime(m.CreatedAt))
}

// List handles GET /chats/user/{user_id}
func (h *ChatsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	conversations, err := h.store.ListConversations(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list conversations", zap.String("user_id", userID), zap.Error(err))
		metrics.RecordStoreError("list_conversations")
		respondError(w, http.StatusInternalServerError, "get_chats_failed", err.Error())
		return
	}

	if len(conversations) == 0 {
		respondSuccess(w, "no_chats", "No chats found")
		return
	}

	lines := make([]string, 0, len(conversations))
	for _, c := range conversations {
		lines = append(lines, conversationLine(c))
	}
	respondSuccess(w, strings.Join(lines, "\n"), "Chats retrieved")
}

// Get handles GET /chats/{chat_id}
func (h *ChatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chat_id")
	ctx := r.Context()

	conversation, err := h.store.GetConversation(ctx, chatID)
	if err != nil {
		if errors.Is(err, store.ErrConversationNotFound) {
			respondError(w, http.StatusNotFound, "chat_not_found", "Chat not found")
			return
		}
		h.logger.Error("failed to get conversation", zap.String("chat_id", chatID), zap.Error(err))
		metrics.RecordStoreError("get_conversation")
		respondError(w, http.StatusInternalServerError, "get_chat_failed", err.Error())
		return
	}

	messages, err := h.store.GetMessages(ctx, chatID)
	if err != nil {
		h.logger.Error("failed to get messages", zap.String("chat_id", chatID), zap.Error(err))
		metrics.RecordStoreError("get_messages")
		respondError(w, http.StatusInternalServerError, "get_chat_failed", err.Error())
		return
	}

	if len(messages) == 0 {
		respondSuccess(w, conversationLine(*conversation), "no_messages")
		return
	}

	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, messageLine(m))
	}
	respondSuccess(w, conversationLine(*conversation), strings.Join(lines, "\n"))
}

// Messages handles GET /chats/{chat_id}/messages
func (h *ChatsHandler) Messages(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chat_id")
	ctx := r.Context()

	if _, err := h.store.GetConversation(ctx, chatID); err != nil {
		if errors.Is(err, store.ErrConversationNotFound) {
			respondError(w, http.StatusNotFound, "chat_not_found", "Chat not found")
			return
		}
		h.logger.Error("failed to get conversation", zap.String("chat_id", chatID), zap.Error(err))
		metrics.RecordStoreError("get_conversation")
		respondError(w, http.StatusInternalServerError, "get_messages_failed", err.Error())
		return
	}

	messages, err := h.store.GetMessages(ctx, chatID)
	if err != nil {
		h.logger.Error("failed to get messages", zap.String("chat_id", chatID), zap.Error(err))
		metrics.RecordStoreError("get_messages")
		respondError(w, http.StatusInternalServerError, "get_messages_failed", err.Error())
		return
	}

	if len(messages) == 0 {
		respondSuccess(w, "no_messages", "No messages found")
		return
	}

	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, messageLine(m))
	}
	respondSuccess(w, strings.Join(lines, "\n"), "Messages retrieved")
}

// Create handles POST /chats
func (h *ChatsHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, "")
}

// Update handles PUT /chats/{chat_id}
func (h *ChatsHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, chi.URLParam(r, "chat_id"))
}

func (h *ChatsHandler) upsert(w http.ResponseWriter, r *http.Request, chatID string) {
	var req model.UpsertChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "Invalid request body")
		return
	}

	if chatID == "" {
		chatID = strings.TrimSpace(req.ID)
	}
	if chatID == "" {
		chatID = uuid.New().String()
	}
	if req.Title == "" {
		req.Title = "New Chat"
	}
	if req.AIType == "" {
		req.AIType = "chat"
	}
	if err := middleware.ValidateTitle(req.Title); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_title", err.Error())
		return
	}

	if err := h.store.UpsertConversation(r.Context(), chatID, req.UserID, req.AIType, req.Title); err != nil {
		h.logger.Error("failed to upsert conversation", zap.String("chat_id", chatID), zap.Error(err))
		metrics.RecordStoreError("upsert_conversation")
		respondError(w, http.StatusInternalServerError, "update_failed", err.Error())
		return
	}

	respondSuccess(w, "chat_saved", "Chat saved successfully")
}

// Delete handles DELETE /chats/{chat_id}
func (h *ChatsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chat_id")
	if chatID == "" || chatID == "undefined" {
		respondError(w, http.StatusBadRequest, "invalid_chat_id", "Chat ID is required")
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		var body struct {
			UserID string `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			userID = body.UserID
		}
	}
	if userID == "" {
		respondError(w, http.StatusBadRequest, "missing_user_id", "User ID is required")
		return
	}

	err := h.store.DeleteConversation(r.Context(), chatID, userID)
	switch {
	case err == nil:
		respondSuccess(w, "chat_deleted", "Chat deleted successfully")
	case errors.Is(err, store.ErrConversationNotFound):
		respondError(w, http.StatusNotFound, "chat_not_found", "Chat not found")
	case errors.Is(err, store.ErrForbidden):
		respondError(w, http.StatusForbidden, "unauthorized", "Unauthorized to delete this chat")
	default:
		h.logger.Error("failed to delete conversation", zap.String("chat_id", chatID), zap.Error(err))
		metrics.RecordStoreError("delete_conversation")
		respondError(w, http.StatusInternalServerError, "delete_failed", err.Error())
	}
}

// DeleteAll handles DELETE /chats/user/{user_id}/all
func (h *ChatsHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	deleted, err := h.store.DeleteAllConversations(r.Context(), userID)
	switch {
	case err == nil:
		respondSuccess(w, "all_chats_deleted", fmt.Sprintf("%d chats deleted successfully", deleted))
	case errors.Is(err, store.ErrConversationNotFound):
		respondError(w, http.StatusNotFound, "no_chats", "No chats found to delete")
	default:
		h.logger.Error("failed to delete conversations", zap.String("user_id", userID), zap.Error(err))
		metrics.RecordStoreError("delete_all_conversations")
		respondError(w, http.StatusInternalServerError, "delete_all_failed", err.Error())
	}
}
