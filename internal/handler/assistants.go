package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ai-universe/assistant-platform/internal/assistant"
)

// AssistantsHandler exposes the assistant catalog.
type AssistantsHandler struct {
	registry *assistant.Registry
}

// NewAssistantsHandler creates a new assistants handler.
func NewAssistantsHandler(registry *assistant.Registry) *AssistantsHandler {
	return &AssistantsHandler{registry: registry}
}

// List handles GET /assistants
func (h *AssistantsHandler) List(w http.ResponseWriter, r *http.Request) {
	configs := h.registry.List()

	lines := make([]string, 0, len(configs))
	for _, cfg := range configs {
		lines = append(lines, fmt.Sprintf("%d|%s|%s|%s|%s|%s",
			cfg.ID, cfg.Key, cfg.DisplayName, cfg.Description, cfg.Category, cfg.Icon))
	}

	respondSuccess(w, strings.Join(lines, "\n"), "Assistants retrieved")
}
