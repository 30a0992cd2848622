package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ai-universe/assistant-platform/internal/model"
)

// UpsertUser creates a user keyed by email, or refreshes name and
// picture when the email already exists. Returns the resulting row.
func (db *DB) UpsertUser(ctx context.Context, email, name, picture string) (*model.User, error) {
	now := time.Now().UTC()

	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, picture, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(email) DO UPDATE SET name = excluded.name, picture = excluded.picture`,
		uuid.New().String(), email, name, picture, unixNano(now),
	)
	if err != nil {
		return nil, err
	}

	return db.GetUserByEmail(ctx, email)
}

// GetUserByEmail retrieves a user by email.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	var createdAt int64
	err := db.QueryRowContext(ctx,
		`SELECT id, email, name, picture, created_at FROM users WHERE email = ?`,
		email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Picture, &createdAt)
	if err != nil {
		return nil, err
	}
	u.CreatedAt = fromUnixNano(createdAt)
	return &u, nil
}
