// Package session owns the client-side association between the
// persisted token pair and the resolved user identity.
package session

import (
	"context"
	"sync"

	"github.com/avidalm/authgate/internal/client/api"
	"github.com/avidalm/authgate/internal/client/models"
	"github.com/avidalm/authgate/internal/client/tokenstore"
	"github.com/avidalm/authgate/internal/logging"
)

// Status is the session lifecycle state.
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusLoading       Status = "loading"
	StatusAuthenticated Status = "authenticated"
	StatusAnonymous     Status = "anonymous"
)

// Snapshot is a read-only view of the session at a point in time.
type Snapshot struct {
	User          *models.User
	Status        Status
	Authenticated bool
}

// Manager reconciles persisted tokens with the in-memory identity.
// It is the single owner of both: every path that clears one clears
// the other, so the client can never end up authenticated without an
// identity or holding an identity without a token.
type Manager struct {
	mu     sync.Mutex
	client api.Client
	store  tokenstore.Store
	log    logging.Logger
	user   *models.User
	status Status
}

func NewManager(client api.Client, store tokenstore.Store, log logging.Logger) *Manager {
	return &Manager{
		client: client,
		store:  store,
		log:    log.With("component", "session"),
		status: StatusUninitialized,
	}
}

// Initialize resolves the persisted session, if any. With no persisted
// access token the session is anonymous. With one, the remote identity
// is fetched; a rejected token is not an error, the stale session is
// dropped and both tokens are cleared.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = StatusLoading

	access, err := m.store.Get(ctx, tokenstore.KeyAccessToken)
	if err != nil {
		m.status = StatusAnonymous
		return err
	}
	if access == "" {
		m.status = StatusAnonymous
		return nil
	}

	user, err := m.client.FetchCurrentUser(ctx, access)
	if err != nil {
		m.log.Warn(ctx, "persisted token rejected, clearing session", "error", err)
		if cerr := m.store.Clear(ctx); cerr != nil {
			m.log.Error(ctx, "failed to clear token store", "error", cerr)
		}
		m.user = nil
		m.status = StatusAnonymous
		return nil
	}

	m.user = user
	m.status = StatusAuthenticated
	m.log.Info(ctx, "session restored", "username", user.Username)
	return nil
}

// Login persists both tokens and installs the user. It performs no
// network call: the caller has already completed the login exchange.
func (m *Manager) Login(ctx context.Context, user *models.User, pair *models.TokenPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Set(ctx, tokenstore.KeyAccessToken, pair.AccessToken); err != nil {
		return err
	}
	if err := m.store.Set(ctx, tokenstore.KeyRefreshToken, pair.RefreshToken); err != nil {
		// Never leave half a token pair behind.
		if cerr := m.store.Clear(ctx); cerr != nil {
			m.log.Error(ctx, "failed to clear token store", "error", cerr)
		}
		return err
	}

	m.user = user
	m.status = StatusAuthenticated
	return nil
}

// Logout clears both persisted tokens and the in-memory user. It never
// fails and is safe to call repeatedly.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(ctx, tokenstore.KeyAccessToken); err != nil {
		m.log.Error(ctx, "failed to delete access token", "error", err)
	}
	if err := m.store.Delete(ctx, tokenstore.KeyRefreshToken); err != nil {
		m.log.Error(ctx, "failed to delete refresh token", "error", err)
	}
	m.user = nil
	m.status = StatusAnonymous
}

// UpdateUser replaces the in-memory identity after a profile change.
// A no-op unless a session is active.
func (m *Manager) UpdateUser(user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status == StatusAuthenticated {
		m.user = user
	}
}

// IsAuthenticated is recomputed on every call from the in-memory user
// and the persisted access token; it is never cached.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticatedLocked(ctx)
}

func (m *Manager) authenticatedLocked(ctx context.Context) bool {
	if m.user == nil {
		return false
	}
	access, err := m.store.Get(ctx, tokenstore.KeyAccessToken)
	return err == nil && access != ""
}

func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) Snapshot(ctx context.Context) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{Status: m.status, Authenticated: m.authenticatedLocked(ctx)}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}
