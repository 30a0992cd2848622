package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ai-universe/assistant-platform/internal/model"
)

// BumpUsage increments the round-trip counter for one (user, assistant)
// pair and stamps last_used. The upsert runs as a single statement, so
// concurrent bumps for the same pair serialize inside the engine and no
// increment is lost.
func (db *DB) BumpUsage(ctx context.Context, userID, aiType string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO user_stats (id, user_id, ai_type, usage_count, last_used)
		 VALUES (?, ?, ?, 1, ?)
		 ON CONFLICT(user_id, ai_type) DO UPDATE SET
			usage_count = usage_count + 1,
			last_used = excluded.last_used`,
		uuid.New().String(), userID, aiType, unixNano(time.Now().UTC()),
	)
	return err
}

// Stats returns the aggregate usage view for one user: totals, the most
// used assistant, and per-assistant counters ordered by usage.
func (db *DB) Stats(ctx context.Context, userID string) (*model.UserStats, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, ai_type, usage_count, last_used
		 FROM user_stats WHERE user_id = ?
		 ORDER BY usage_count DESC, ai_type ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &model.UserStats{}
	for rows.Next() {
		var s model.UsageStat
		var lastUsed int64
		if err := rows.Scan(&s.ID, &s.UserID, &s.AIType, &s.UsageCount, &lastUsed); err != nil {
			return nil, err
		}
		s.LastUsed = fromUnixNano(lastUsed)
		stats.PerAssistant = append(stats.PerAssistant, s)
		stats.TotalMessages += s.UsageCount
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(stats.PerAssistant) > 0 {
		stats.MostUsedAIType = stats.PerAssistant[0].AIType
	}

	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conversations WHERE user_id = ?`,
		userID,
	).Scan(&stats.TotalConversations); err != nil {
		return nil, err
	}

	return stats, nil
}
