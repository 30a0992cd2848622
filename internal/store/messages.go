package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ai-universe/assistant-platform/internal/model"
)

// AppendMessage inserts one round-trip record and bumps the parent
// conversation's updated_at, in a single transaction. Returns
// ErrConversationNotFound when the conversation does not exist.
func (db *DB) AppendMessage(ctx context.Context, conversationID, userID, content, aiResponse string) (*model.Message, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM conversations WHERE id = ?`, conversationID,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := &model.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		UserID:         userID,
		Content:        content,
		AIResponse:     aiResponse,
		CreatedAt:      now,
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO messages (id, conversation_id, user_id, content, ai_response, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.ConversationID, m.UserID, m.Content, m.AIResponse, unixNano(m.CreatedAt),
	); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE conversations SET updated_at = ? WHERE id = ?`,
		unixNano(now), conversationID,
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return m, nil
}

// GetMessages returns a conversation's messages ordered oldest first.
// Insertion order breaks created_at ties so replay is deterministic.
func (db *DB) GetMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, conversation_id, user_id, content, ai_response, created_at
		 FROM messages WHERE conversation_id = ?
		 ORDER BY created_at ASC, rowid ASC`,
		conversationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var m model.Message
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.UserID, &m.Content, &m.AIResponse, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = fromUnixNano(createdAt)
		out = append(out, m)
	}
	return out, rows.Err()
}

// CountMessages returns the number of messages in a conversation.
func (db *DB) CountMessages(ctx context.Context, conversationID string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM messages WHERE conversation_id = ?`,
		conversationID,
	).Scan(&n)
	return n, err
}
