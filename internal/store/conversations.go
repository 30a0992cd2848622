package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ai-universe/assistant-platform/internal/model"
)

// titleLimit is the maximum conversation title length; longer seed
// titles are cut here with an ellipsis marker.
const titleLimit = 50

// StartOrGetConversation returns the id of an existing conversation, or
// creates one. A non-empty id that does not exist yet is created under
// that id (clients may generate their own); an empty id gets a fresh
// one. The title is derived from seedTitle.
func (db *DB) StartOrGetConversation(ctx context.Context, id, userID, aiType, seedTitle string) (string, error) {
	if id != "" {
		var exists int
		err := db.QueryRowContext(ctx,
			`SELECT 1 FROM conversations WHERE id = ?`, id,
		).Scan(&exists)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return "", err
		}
	} else {
		id = uuid.New().String()
	}

	now := unixNano(time.Now().UTC())
	_, err := db.ExecContext(ctx,
		`INSERT INTO conversations (id, user_id, ai_type, title, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, userID, aiType, deriveTitle(seedTitle), now, now,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpsertConversation creates or updates a conversation's title under a
// caller-chosen id, bumping updated_at. Backs the PUT /chats endpoint.
func (db *DB) UpsertConversation(ctx context.Context, id, userID, aiType, title string) error {
	now := unixNano(time.Now().UTC())
	_, err := db.ExecContext(ctx,
		`INSERT INTO conversations (id, user_id, ai_type, title, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET title = excluded.title, updated_at = excluded.updated_at`,
		id, userID, aiType, title, now, now,
	)
	return err
}

// GetConversation retrieves one conversation by id.
func (db *DB) GetConversation(ctx context.Context, id string) (*model.Conversation, error) {
	var c model.Conversation
	var createdAt, updatedAt int64
	err := db.QueryRowContext(ctx,
		`SELECT id, user_id, ai_type, title, created_at, updated_at
		 FROM conversations WHERE id = ?`,
		id,
	).Scan(&c.ID, &c.UserID, &c.AIType, &c.Title, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}
	c.CreatedAt = fromUnixNano(createdAt)
	c.UpdatedAt = fromUnixNano(updatedAt)
	return &c, nil
}

// ListConversations returns a user's conversations, most recently
// updated first.
func (db *DB) ListConversations(ctx context.Context, userID string) ([]model.Conversation, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, ai_type, title, created_at, updated_at
		 FROM conversations WHERE user_id = ?
		 ORDER BY updated_at DESC, rowid DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Conversation
	for rows.Next() {
		var c model.Conversation
		var createdAt, updatedAt int64
		if err := rows.Scan(&c.ID, &c.UserID, &c.AIType, &c.Title, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		c.CreatedAt = fromUnixNano(createdAt)
		c.UpdatedAt = fromUnixNano(updatedAt)
		out = append(out, c)
	}
	return out, rows.Err()
}

// DeleteConversation removes one conversation and its messages,
// messages first, in a single transaction. The requesting user must own
// the conversation; an empty userID never matches and is rejected.
func (db *DB) DeleteConversation(ctx context.Context, id, userID string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var owner string
	err = tx.QueryRowContext(ctx,
		`SELECT user_id FROM conversations WHERE id = ?`, id,
	).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrConversationNotFound
	}
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrForbidden
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM messages WHERE conversation_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM conversations WHERE id = ?`, id); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteAllConversations removes every conversation a user owns, with
// their messages, and returns how many conversations were deleted.
func (db *DB) DeleteAllConversations(ctx context.Context, userID string) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM messages WHERE conversation_id IN
		 (SELECT id FROM conversations WHERE user_id = ?)`,
		userID); err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM conversations WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrConversationNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(n), nil
}

func deriveTitle(seed string) string {
	runes := []rune(seed)
	if len(runes) > titleLimit {
		return string(runes[:titleLimit]) + "..."
	}
	return seed
}
