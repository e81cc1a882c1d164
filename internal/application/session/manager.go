// Package session owns the authenticated-session lifecycle and is the
// single source of truth for "is a user logged in". It persists through the
// credential store and talks to the backend through the auth facade.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/mydailybill/mdb-admin/internal/application/api"
	"github.com/mydailybill/mdb-admin/internal/domain/entity"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/credstore"
	"github.com/mydailybill/mdb-admin/pkg/logger"
)

// State of the session machine.
type State int

const (
	// StateUnknown holds until the startup storage check completes.
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// AuthService is the slice of the auth facade the manager needs.
type AuthService interface {
	Login(ctx context.Context, creds api.Credentials) (*api.LoginResponse, error)
	Logout(ctx context.Context) (warning string)
}

// Manager is the session state machine. Construct one per process and pass
// it by reference; there is no package-level instance.
type Manager struct {
	store *credstore.Store
	auth  AuthService
	log   *logger.Logger

	// restart is the host's hard-reset behavior, run after logout. The web
	// console reloads the page here; a CLI typically just returns to the
	// shell.
	restart func()

	mu      sync.Mutex
	state   State
	loading bool
	token   string
	record  *entity.SessionRecord
}

// Option configures the manager.
type Option func(*Manager)

// WithRestart binds the host's post-logout reset hook.
func WithRestart(fn func()) Option {
	return func(m *Manager) { m.restart = fn }
}

// NewManager builds a manager in the Unknown state with loading set, so
// consumers render a neutral surface until Restore runs.
func NewManager(store *credstore.Store, auth AuthService, log *logger.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		auth:    auth,
		log:     log,
		state:   StateUnknown,
		loading: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Restore runs the startup storage check: a complete token/record pair
// authenticates, anything else does not. Corruption is already self-healed
// inside the store.
func (m *Manager) Restore() {
	token, rec := m.store.Load()

	m.mu.Lock()
	defer m.mu.Unlock()
	if token != "" && rec != nil {
		m.state = StateAuthenticated
		m.token = token
		m.record = rec
	} else {
		m.state = StateUnauthenticated
		m.token = ""
		m.record = nil
	}
	m.loading = false
}

// Login authenticates and persists the session. On failure the prior state
// is kept and the returned error message is ready for display.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.setLoading(true)
	defer m.setLoading(false)

	res, err := m.auth.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}

	name := res.Name
	if name == "" {
		name = res.Username
	}
	if name == "" {
		name = entity.DefaultUserName
	}
	companies := res.Data
	if companies == nil {
		companies = []entity.Company{}
	}
	rec := &entity.SessionRecord{
		UserType:  res.UserType,
		Companies: companies,
		Email:     email,
		LoginTime: time.Now().UTC(),
		Name:      name,
	}

	// A failed persist does not downgrade the session: in-memory state
	// stays authoritative for this process lifetime.
	if err := m.store.Save(res.Token, rec); err != nil {
		m.log.Warn().Err(err).Msg("session: persisting session failed")
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.token = res.Token
	m.record = rec
	m.mu.Unlock()

	m.log.Info().Str("email", email).Str("user_type", res.UserType).Msg("session: login")
	return nil
}

// Logout ends the session. The remote call is best-effort (and skipped
// entirely when skipRemote is set or no session exists); local cleanup
// always happens, then the host's restart hook runs.
func (m *Manager) Logout(ctx context.Context, skipRemote bool) {
	if !skipRemote && m.IsAuthenticated() {
		if warning := m.auth.Logout(ctx); warning != "" {
			m.log.Warn().Str("warning", warning).Msg("session: remote logout failed, continuing with local cleanup")
		}
	}

	m.store.Clear()

	m.mu.Lock()
	m.state = StateUnauthenticated
	m.token = ""
	m.record = nil
	m.loading = false
	m.mu.Unlock()

	m.log.Info().Msg("session: logout")
	if m.restart != nil {
		m.restart()
	}
}

// UpdateUser merges a partial update into the session record and persists
// the new record. No state transition.
func (m *Manager) UpdateUser(patch entity.SessionPatch) {
	m.mu.Lock()
	if m.record == nil {
		m.mu.Unlock()
		return
	}
	rec := m.record.Merge(patch)
	m.record = rec
	token := m.token
	m.mu.Unlock()

	if err := m.store.Save(token, rec); err != nil {
		m.log.Warn().Err(err).Msg("session: persisting user update failed")
	}
}

// UpdateCompanies replaces the cached companies list and persists the new
// record (used after a confirmed server-side mutation).
func (m *Manager) UpdateCompanies(companies []entity.Company) {
	m.mu.Lock()
	if m.record == nil {
		m.mu.Unlock()
		return
	}
	rec := m.record.Clone()
	rec.Companies = append([]entity.Company(nil), companies...)
	m.record = rec
	token := m.token
	m.mu.Unlock()

	if err := m.store.Save(token, rec); err != nil {
		m.log.Warn().Err(err).Msg("session: persisting companies update failed")
	}
}

// Refresh re-runs the startup storage check, re-syncing after an external
// mutation of the store.
func (m *Manager) Refresh() {
	m.Restore()
}

// State returns the current machine state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Loading reports whether the startup check (or a login) is in flight.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// Token returns the current bearer token ("" when unauthenticated).
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Record returns a copy of the session record, or nil.
func (m *Manager) Record() *entity.SessionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.record.Clone()
}

// Companies returns the cached companies from the session record.
func (m *Manager) Companies() []entity.Company {
	rec := m.Record()
	if rec == nil {
		return nil
	}
	return rec.Companies
}

// Gate evaluates the route gate for the current state.
func (m *Manager) Gate() Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Decide(m.loading, m.state == StateAuthenticated)
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
