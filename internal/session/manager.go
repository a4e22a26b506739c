// Package session resolves and owns the authentication state of one portal
// client. Each navigation re-runs the resolution against the external API;
// the newest resolution always wins.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/internship-hub-portal/internal/apiclient"
	"github.com/internship-hub-portal/internal/kvstore"
	"github.com/internship-hub-portal/internal/metrics"
	"github.com/internship-hub-portal/internal/models"
	"github.com/rs/zerolog"
)

// ErrInvalidLoginResponse is returned when the backend accepts credentials
// but omits the user or the access token.
var ErrInvalidLoginResponse = errors.New("login response missing user or access token")

// ErrLoginSuperseded is returned when a logout happened while the login
// request was in flight. Nothing is stored.
var ErrLoginSuperseded = errors.New("login superseded by logout")

// AuthClient is the narrow backend surface needed by the manager
type AuthClient interface {
	Me(ctx context.Context) (*models.BackendUser, error)
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
}

// Options tunes a Manager
type Options struct {
	// StrictRoles fails the session closed when the backend role is outside the closed set
	StrictRoles bool
	Metrics     *metrics.Metrics
	Now         func() time.Time
}

// Manager is the single owner of one client's Session
type Manager struct {
	store  kvstore.Store
	client AuthClient
	opts   Options
	log    zerolog.Logger

	seq atomic.Uint64
	// logouts counts logouts so an in-flight Login can detect one
	logouts atomic.Uint64

	mu      sync.RWMutex
	current models.Session
	// settled is the last session published outside of a resolution pass
	settled models.Session
}

// NewManager creates a manager in the UNINITIALIZED state. store must be
// scoped to the client.
func NewManager(store kvstore.Store, client AuthClient, log zerolog.Logger, opts Options) *Manager {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{
		store:   store,
		client:  client,
		opts:    opts,
		log:     log.With().Str("service", "session").Logger(),
		current: models.Session{State: models.SessionUninitialized},
		settled: models.Session{State: models.SessionUninitialized},
	}
}

// Current returns a copy of the published session
func (m *Manager) Current() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// View returns the read-only session view
func (m *Manager) View() models.SessionView {
	return m.Current().View()
}

// outcome is the result of validating the stored token, applied on commit
type outcome struct {
	session models.Session
	persist *models.UserProfile
	clear   bool
}

// Resolve runs one resolution pass and returns the session it produced.
// The result is published, and its storage side effects applied, only if no
// newer resolution, login or logout started in the meantime.
func (m *Manager) Resolve(ctx context.Context) (models.Session, error) {
	seq := m.begin()

	out, err := m.validate(ctx)
	if err != nil {
		m.mu.Lock()
		settled := m.settled
		if m.seq.Load() == seq {
			m.current = settled
		}
		m.mu.Unlock()
		return settled, err
	}

	if !m.commit(ctx, seq, out) {
		m.opts.Metrics.ObserveStale()
		m.log.Debug().Uint64("seq", seq).Str("state", string(out.session.State)).Msg("Discarded stale session resolution")
	}
	m.opts.Metrics.ObserveResolution(string(out.session.State))
	return out.session, nil
}

// begin claims a sequence number and publishes the RESOLVING state
func (m *Manager) begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	seq := m.seq.Add(1)
	m.current = models.Session{State: models.SessionResolving, Loading: true}
	return seq
}

// validate reads the token and checks it against the backend. It performs no writes.
func (m *Manager) validate(ctx context.Context) (outcome, error) {
	unauthenticated := models.Session{State: models.SessionUnauthenticated}

	token, ok, err := m.store.Get(ctx, kvstore.KeyAuthToken)
	if err != nil {
		return outcome{}, fmt.Errorf("read auth token: %w", err)
	}
	if !ok || token == "" {
		return outcome{session: unauthenticated}, nil
	}

	user, err := m.client.Me(ctx)
	switch {
	case err != nil && ctx.Err() != nil:
		return outcome{}, ctx.Err()
	case errors.Is(err, apiclient.ErrNetworkUnavailable):
		cached, ok := m.cachedProfile(ctx)
		if !ok {
			m.log.Warn().Err(err).Msg("Backend unreachable and no cached profile, clearing session")
			return outcome{session: unauthenticated, clear: true}, nil
		}
		m.log.Warn().Err(err).Str("user_id", cached.ID).Msg("Backend unreachable, using cached profile")
		return outcome{session: models.Session{
			Token: token,
			User:  cached,
			Role:  cached.Role,
			State: models.SessionDegraded,
		}}, nil
	case errors.Is(err, apiclient.ErrRequestFailed):
		m.log.Info().Err(err).Msg("Token rejected, clearing session")
		return outcome{session: unauthenticated, clear: true}, nil
	case errors.Is(err, apiclient.ErrInvalidResponse):
		// Same as an empty payload: the backend vouched for no one
		m.log.Warn().Err(err).Msg("Unreadable user payload, clearing session")
		return outcome{session: unauthenticated, clear: true}, nil
	case err != nil:
		return outcome{}, fmt.Errorf("validate session: %w", err)
	case user.Empty():
		m.log.Info().Msg("Backend returned no user for token, clearing session")
		return outcome{session: unauthenticated, clear: true}, nil
	}

	profile := user.ToProfile()
	if _, err := models.ParseRole(user.Role); err != nil {
		if m.opts.StrictRoles {
			m.log.Warn().Str("role", user.Role).Msg("Unknown role under strict policy, clearing session")
			return outcome{session: unauthenticated, clear: true}, nil
		}
		m.log.Warn().Str("role", user.Role).Msg("Unknown role, keeping upper-cased value")
	}

	return outcome{
		session: models.Session{
			Token: token,
			User:  profile,
			Role:  profile.Role,
			State: models.SessionAuthenticated,
		},
		persist: profile,
	}, nil
}

// commit publishes out if seq is still the latest. Reports whether it did.
func (m *Manager) commit(ctx context.Context, seq uint64, out outcome) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seq.Load() != seq {
		return false
	}

	switch {
	case out.clear:
		if err := m.clearKeys(ctx); err != nil {
			m.log.Error().Err(err).Msg("Failed to clear session keys")
		}
	case out.persist != nil:
		if err := m.persistProfile(ctx, out.persist); err != nil {
			m.log.Error().Err(err).Msg("Failed to persist profile snapshot")
		}
	}

	m.current = out.session
	m.settled = out.session
	return true
}

// Login exchanges credentials with the backend and stores the new session.
// It supersedes any in-flight resolution. A logout issued while the backend
// call is in flight wins: the login returns ErrLoginSuperseded.
func (m *Manager) Login(ctx context.Context, email, password string) (models.Session, error) {
	logouts := m.logouts.Load()

	resp, err := m.client.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, err
	}
	if resp.User.Empty() || resp.Session.AccessToken == "" {
		return models.Session{}, ErrInvalidLoginResponse
	}

	profile := resp.User.ToProfile()
	if m.opts.StrictRoles {
		if _, err := models.ParseRole(resp.User.Role); err != nil {
			return models.Session{}, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.logouts.Load() != logouts {
		m.log.Info().Str("user_id", profile.ID).Msg("Discarded login superseded by logout")
		return m.current, ErrLoginSuperseded
	}
	m.seq.Add(1)

	if err := m.store.Set(ctx, kvstore.KeyAuthToken, resp.Session.AccessToken); err != nil {
		return models.Session{}, fmt.Errorf("store auth token: %w", err)
	}
	if err := m.persistProfile(ctx, profile); err != nil {
		return models.Session{}, err
	}

	m.current = models.Session{
		Token: resp.Session.AccessToken,
		User:  profile,
		Role:  profile.Role,
		State: models.SessionAuthenticated,
	}
	m.settled = m.current
	m.log.Info().Str("user_id", profile.ID).Str("role", string(profile.Role)).Msg("User logged in")
	return m.current, nil
}

// Logout clears every session key and publishes UNAUTHENTICATED.
// In-flight resolutions can no longer publish.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq.Add(1)
	m.logouts.Add(1)

	err := m.clearKeys(ctx)
	m.current = models.Session{State: models.SessionUnauthenticated}
	m.settled = m.current
	m.log.Info().Msg("User logged out")
	return err
}

// cachedProfile reads and validates the stored snapshot
func (m *Manager) cachedProfile(ctx context.Context) (*models.UserProfile, bool) {
	raw, ok, err := m.store.Get(ctx, kvstore.KeyUser)
	if err != nil {
		m.log.Warn().Err(err).Msg("Failed to read cached profile")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	profile, ok := decodeSnapshot(raw)
	if !ok {
		m.log.Warn().Msg("Cached profile does not match snapshot schema, ignoring")
	}
	return profile, ok
}

// persistProfile overwrites the snapshot and the derived keys. Caller holds m.mu.
func (m *Manager) persistProfile(ctx context.Context, profile *models.UserProfile) error {
	snapshot, err := encodeSnapshot(profile, m.opts.Now())
	if err != nil {
		return fmt.Errorf("encode profile snapshot: %w", err)
	}
	values := []struct{ key, value string }{
		{kvstore.KeyUser, snapshot},
		{kvstore.KeyUserRole, string(profile.Role)},
		{kvstore.KeyUserName, profile.FullName()},
		{kvstore.KeyUserEmail, profile.Email},
	}
	for _, kv := range values {
		if err := m.store.Set(ctx, kv.key, kv.value); err != nil {
			return fmt.Errorf("store %s: %w", kv.key, err)
		}
	}
	return nil
}

// clearKeys removes every session key. Caller holds m.mu.
func (m *Manager) clearKeys(ctx context.Context) error {
	var errs []error
	for _, key := range kvstore.SessionKeys {
		if err := m.store.Remove(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}
