// Package tokenstore persists the session credentials between runs.
//
// The store is plain key-value storage: no expiry is tracked here.
// A stale token is only discovered when an authenticated request fails.
package tokenstore

import "context"

// Keys under which the session credentials are kept.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
)

// Store is durable key-value storage for session credentials.
// Get returns "" with a nil error when the key is absent; an absent
// key means "no session".
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
