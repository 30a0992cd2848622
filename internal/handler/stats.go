package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ai-universe/assistant-platform/internal/store"
	"github.com/ai-universe/assistant-platform/pkg/logger"
	"github.com/ai-universe/assistant-platform/pkg/metrics"
)

// chartLimit caps how many assistants the chart payload includes.
const chartLimit = 10

// StatsHandler handles usage statistics endpoints.
type StatsHandler struct {
	store  *store.DB
	logger *logger.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(db *store.DB, log *logger.Logger) *StatsHandler {
	return &StatsHandler{
		store:  db,
		logger: log,
	}
}

// Stats handles GET /stats/user/{user_id}
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	stats, err := h.store.Stats(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get stats", zap.String("user_id", userID), zap.Error(err))
		metrics.RecordStoreError("stats")
		respondError(w, http.StatusInternalServerError, "stats_failed", err.Error())
		return
	}

	if len(stats.PerAssistant) == 0 {
		respondSuccess(w, "no_stats", "No statistics available yet")
		return
	}

	lines := []string{
		fmt.Sprintf("TOTAL_MESSAGES:%d", stats.TotalMessages),
		fmt.Sprintf("TOTAL_CONVERSATIONS:%d", stats.TotalConversations),
		fmt.Sprintf("MOST_USED_AI:%s", stats.MostUsedAIType),
	}
	for _, s := range stats.PerAssistant {
		lines = append(lines, fmt.Sprintf("AI_STAT:%s|%d|%s", s.AIType, s.UsageCount, formatTime(s.LastUsed)))
	}

	respondSuccess(w, strings.Join(lines, "\n"), "Stats retrieved")
}

// Chart handles GET /stats/chart/user/{user_id}
func (h *StatsHandler) Chart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	stats, err := h.store.Stats(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get chart stats", zap.String("user_id", userID), zap.Error(err))
		metrics.RecordStoreError("stats")
		respondError(w, http.StatusInternalServerError, "chart_failed", err.Error())
		return
	}

	if len(stats.PerAssistant) == 0 {
		respondSuccess(w, "no_chart_data", "No chart data available")
		return
	}

	top := stats.PerAssistant
	if len(top) > chartLimit {
		top = top[:chartLimit]
	}

	labels := make([]string, 0, len(top))
	data := make([]string, 0, len(top))
	for _, s := range top {
		labels = append(labels, s.AIType)
		data = append(data, strconv.Itoa(s.UsageCount))
	}

	payload := fmt.Sprintf("LABELS:%s\nDATA:%s", strings.Join(labels, ","), strings.Join(data, ","))
	respondSuccess(w, payload, "Chart data retrieved")
}
