package session

import (
	"context"
	"errors"
)

// Package session holds server-side login sessions keyed by an opaque token.
// The token travels in a cookie; everything else stays on the server.

// ErrNotFound is returned by Get when no live session exists for a token,
// either because it never existed or because it expired.
var ErrNotFound = errors.New("session not found")

// Session binds a request to an authenticated user identity.
type Session struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Store creates, resolves, and destroys sessions. Implementations must be
// safe for concurrent use.
type Store interface {
	// Create stores a new session and returns its opaque token.
	Create(ctx context.Context, s Session) (string, error)

	// Get resolves a token to its session, or ErrNotFound.
	Get(ctx context.Context, token string) (*Session, error)

	// Destroy removes the session for a token. Destroying an unknown token is
	// not an error.
	Destroy(ctx context.Context, token string) error
}
