package repository

import "context"

// SessionStore keeps the 1:1 binding between an account and its opaque
// bearer token, in both directions so a presented token can be resolved
// back to the account on every request.
type SessionStore interface {
	// Find returns the live token for the account, or "" when none exists.
	Find(ctx context.Context, userID uint) (string, error)
	// FindUserID resolves a token back to its account ID, or 0 when the
	// token is unknown.
	FindUserID(ctx context.Context, token string) (uint, error)
	// Save binds the token to the account in both directions. The first
	// write wins: when another token was bound concurrently, that token is
	// returned and the offered one is discarded without a reverse entry.
	Save(ctx context.Context, userID uint, token string) (string, error)
	// Delete removes both bindings for the account.
	Delete(ctx context.Context, userID uint, token string) error
}
