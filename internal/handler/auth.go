package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ai-universe/assistant-platform/internal/auth"
	"github.com/ai-universe/assistant-platform/internal/model"
	"github.com/ai-universe/assistant-platform/internal/store"
	"github.com/ai-universe/assistant-platform/pkg/logger"
	"github.com/ai-universe/assistant-platform/pkg/metrics"
)

// AuthHandler handles the identity exchange endpoint.
type AuthHandler struct {
	store    *store.DB
	verifier *auth.Verifier
	logger   *logger.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(db *store.DB, verifier *auth.Verifier, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		store:    db,
		verifier: verifier,
		logger:   log,
	}
}

// identityBody accepts the three request shapes clients send: a JWT
// assertion, a nested user_data object, or flat fields.
type identityBody struct {
	Token    string `json:"token"`
	UserData *struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Picture  string `json:"picture"`
		GoogleID string `json:"google_id"`
	} `json:"user_data"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
	GoogleID string `json:"google_id"`
	Sub      string `json:"sub"`
}

// Exchange handles POST /auth/identity (and its /auth/google alias).
func (h *AuthHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	var body identityBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		metrics.IdentityExchangesTotal.WithLabelValues("invalid").Inc()
		respondError(w, http.StatusBadRequest, "invalid_body", "Invalid request body")
		return
	}

	var identity *model.Identity
	switch {
	case body.Token != "":
		parsed, err := h.verifier.Identity(body.Token)
		if err != nil {
			h.logger.Warn("identity token rejected", zap.Error(err))
			metrics.IdentityExchangesTotal.WithLabelValues("invalid").Inc()
			respondError(w, http.StatusBadRequest, "invalid_token", "Invalid JWT token")
			return
		}
		identity = parsed
	case body.UserData != nil:
		identity = &model.Identity{
			Email:   body.UserData.Email,
			Name:    body.UserData.Name,
			Picture: body.UserData.Picture,
			Subject: body.UserData.GoogleID,
		}
	default:
		subject := body.GoogleID
		if subject == "" {
			subject = body.Sub
		}
		identity = &model.Identity{
			Email:   body.Email,
			Name:    body.Name,
			Picture: body.Picture,
			Subject: subject,
		}
	}

	if strings.TrimSpace(identity.Email) == "" || strings.TrimSpace(identity.Name) == "" {
		metrics.IdentityExchangesTotal.WithLabelValues("invalid").Inc()
		respondError(w, http.StatusBadRequest, "missing_data", "Email and name are required")
		return
	}

	user, err := h.store.UpsertUser(r.Context(), identity.Email, identity.Name, identity.Picture)
	if err != nil {
		h.logger.Error("failed to upsert user", zap.String("email", identity.Email), zap.Error(err))
		metrics.RecordStoreError("upsert_user")
		metrics.IdentityExchangesTotal.WithLabelValues("failed").Inc()
		respondError(w, http.StatusInternalServerError, "auth_failed", err.Error())
		return
	}

	payload, err := json.Marshal(map[string]string{
		"id":        user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"picture":   user.Picture,
		"google_id": identity.Subject,
	})
	if err != nil {
		metrics.IdentityExchangesTotal.WithLabelValues("failed").Inc()
		respondError(w, http.StatusInternalServerError, "auth_failed", err.Error())
		return
	}

	metrics.IdentityExchangesTotal.WithLabelValues("ok").Inc()
	respondSuccess(w, string(payload), "User authenticated successfully")
}
