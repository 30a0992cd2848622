// Package model defines data structures for the assistant platform.
package model

import (
	"time"
)

// User is an account created from an identity-token exchange. Users are
// keyed by email; name and picture are refreshed on every exchange.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity is the claim set extracted from an identity assertion.
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Subject string `json:"sub"`
}
