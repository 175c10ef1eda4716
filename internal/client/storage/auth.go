// Package storage defines the client-local persistence interfaces.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrAuthNotFound indicates that no session is stored
var ErrAuthNotFound = errors.New("auth data not found")

// AuthStorage defines interface for storing the session on the client.
type AuthStorage interface {
	// SaveAuth stores the session, replacing any previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored session.
	// Returns ErrAuthNotFound if none exists.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored session (logout)
	DeleteAuth(ctx context.Context) error
}

// AuthData is the stored session: the bearer token and its absolute
// expiry as unix seconds. The token is short-lived, the server
// re-checks it on every request; the stored expiry only drives the
// client-side sign-out.
type AuthData struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// Expired reports whether the stored session is past its expiry.
func (a *AuthData) Expired() bool {
	return time.Now().Unix() >= a.ExpiresAt
}
