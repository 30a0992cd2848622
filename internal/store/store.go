// Package store implements the conversation store on SQLite. It owns
// the users, conversations, messages and user_stats tables; all other
// components mutate persisted state only through its methods.
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

// Typed store failures, matched by callers with errors.Is.
var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrForbidden            = errors.New("conversation owned by another user")
)

// Timestamps are stored as unix nanoseconds so ordering comparisons in
// SQL are exact and ties between consecutive writes cannot occur.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	picture TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS conversations (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	ai_type TEXT NOT NULL,
	title TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_conversations_user_updated
	ON conversations(user_id, updated_at);

CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL,
	user_id TEXT NOT NULL,
	content TEXT NOT NULL,
	ai_response TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	FOREIGN KEY(conversation_id) REFERENCES conversations(id)
);

CREATE INDEX IF NOT EXISTS idx_messages_conversation_created
	ON messages(conversation_id, created_at);

CREATE TABLE IF NOT EXISTS user_stats (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	ai_type TEXT NOT NULL,
	usage_count INTEGER NOT NULL DEFAULT 0,
	last_used INTEGER NOT NULL,
	UNIQUE(user_id, ai_type)
);
`

// DB wraps *sql.DB for the platform's storage. Schema is owned by the
// app and applied on Open.
type DB struct {
	*sql.DB
}

// Open opens the SQLite database at path and applies the schema,
// creating the file if missing. ":memory:" is supported for tests.
func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; funneling through one connection
	// avoids SQLITE_BUSY under concurrent upserts.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db}, nil
}

// Healthy reports whether the database connection is usable.
func (db *DB) Healthy(ctx context.Context) error {
	return db.PingContext(ctx)
}

func unixNano(t time.Time) int64 {
	return t.UnixNano()
}

func fromUnixNano(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}
