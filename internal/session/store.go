// Package session tracks per-user conversational state. Sessions are
// created lazily on a user's first message and expire after a configured
// idle window; losing one is harmless, the user just starts over.
package session

import (
	"context"
	"errors"
	"time"

	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// ErrNotFound is returned by Get when no session exists for the user.
var ErrNotFound = errors.New("session: not found")

// Store persists conversational sessions keyed by user ID.
type Store interface {
	// Get returns the session for userID, or ErrNotFound.
	Get(ctx context.Context, userID string) (*domain.Session, error)

	// Put saves the session, replacing any existing one for the same user.
	Put(ctx context.Context, s *domain.Session) error

	// Delete removes the session for userID. Deleting a missing session
	// is not an error.
	Delete(ctx context.Context, userID string) error

	// Sweep removes sessions idle longer than ttl and returns how many
	// were removed. Backends with native expiry may make this a no-op.
	Sweep(ctx context.Context, ttl time.Duration) (int, error)
}
