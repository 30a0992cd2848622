package handler

import (
	"net/http"

	"github.com/ai-universe/assistant-platform/internal/store"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store *store.DB
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *store.DB) *HealthHandler {
	return &HealthHandler{store: db}
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, "AI Universe", "Welcome to AI Universe Platform")
}

// APIRoot handles GET /api
func (h *HealthHandler) APIRoot(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, "AI Universe API", "Welcome to AI Universe API")
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, "healthy", "Server is running")
}

// HealthDB handles GET /health/db
func (h *HealthHandler) HealthDB(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Healthy(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "unhealthy", err.Error())
		return
	}
	respondSuccess(w, "healthy", "Database is reachable")
}
