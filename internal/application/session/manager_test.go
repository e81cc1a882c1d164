package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mydailybill/mdb-admin/internal/application/api"
	"github.com/mydailybill/mdb-admin/internal/application/session"
	"github.com/mydailybill/mdb-admin/internal/domain/entity"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/credstore"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/gateway"
	"github.com/mydailybill/mdb-admin/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test stack: mocked backend + real gateway/facade/store
// ──────────────────────────────────────────────────────────────────────────────

type stack struct {
	manager *session.Manager
	store   *credstore.Store
	mem     *credstore.Memory
}

func newStack(t *testing.T, handler http.Handler, opts ...session.Option) *stack {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	mem := credstore.NewMemory()
	store := credstore.New(mem, logger.Nop())
	gw := gateway.New(gateway.Config{BaseURL: srv.URL}, store, logger.Nop())
	facades := api.New(gw, logger.Nop())
	return &stack{
		manager: session.NewManager(store, facades.Auth, logger.Nop(), opts...),
		store:   store,
		mem:     mem,
	}
}

func loginOK(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			_, _ = w.Write([]byte(`{"token":"T1","user_type":"Super Admin","data":[]}`))
		case "/logout":
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Startup check
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_StartsUnknownAndLoading(t *testing.T) {
	s := newStack(t, loginOK(t))

	assert.Equal(t, session.StateUnknown, s.manager.State())
	assert.True(t, s.manager.Loading())
	assert.Equal(t, session.ShowLoading, s.manager.Gate())
}

func TestManager_RestoreAuthenticatesFromCompletePair(t *testing.T) {
	s := newStack(t, loginOK(t))
	require.NoError(t, s.store.Save("T9", &entity.SessionRecord{Email: "a@b.com", Name: "Super Admin"}))

	s.manager.Restore()

	assert.Equal(t, session.StateAuthenticated, s.manager.State())
	assert.False(t, s.manager.Loading())
	assert.Equal(t, session.ShowApp, s.manager.Gate())
	assert.Equal(t, "T9", s.manager.Token())
}

func TestManager_RestoreWithEmptyStorageUnauthenticates(t *testing.T) {
	s := newStack(t, loginOK(t))
	s.manager.Restore()

	assert.Equal(t, session.StateUnauthenticated, s.manager.State())
	assert.Equal(t, session.ShowLogin, s.manager.Gate())
}

func TestManager_RestoreHealsCorruptRecord(t *testing.T) {
	s := newStack(t, loginOK(t))
	require.NoError(t, s.mem.Set(credstore.TokenKey, "T1"))
	require.NoError(t, s.mem.Set(credstore.UserKey, "{broken"))

	s.manager.Restore()

	assert.Equal(t, session.StateUnauthenticated, s.manager.State())
	assert.Zero(t, s.mem.Len(), "corrupt storage must be cleared")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_LoginBuildsAndPersistsSession(t *testing.T) {
	s := newStack(t, loginOK(t))
	s.manager.Restore()

	before := time.Now().UTC()
	require.NoError(t, s.manager.Login(context.Background(), "a@b.com", "x"))

	assert.Equal(t, session.StateAuthenticated, s.manager.State())
	assert.False(t, s.manager.Loading())

	token, rec := s.store.Load()
	assert.Equal(t, "T1", token)
	require.NotNil(t, rec)
	assert.Equal(t, "Super Admin", rec.UserType)
	assert.Equal(t, "Super Admin", rec.Name, "name defaults when backend sends none")
	assert.Equal(t, "a@b.com", rec.Email)
	assert.NotNil(t, rec.Companies)
	assert.Empty(t, rec.Companies)
	assert.False(t, rec.LoginTime.Before(before.Truncate(time.Second)))
}

func TestManager_LoginNameFallbackChain(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"server name wins", `{"token":"T","user_type":"Super Admin","name":"Priya","username":"priya.k","data":[]}`, "Priya"},
		{"username second", `{"token":"T","user_type":"Super Admin","username":"priya.k","data":[]}`, "priya.k"},
		{"default last", `{"token":"T","user_type":"Super Admin","data":[]}`, "Super Admin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			s.manager.Restore()

			require.NoError(t, s.manager.Login(context.Background(), "a@b.com", "x"))
			rec := s.manager.Record()
			require.NotNil(t, rec)
			assert.Equal(t, tc.want, rec.Name)
		})
	}
}

func TestManager_LoginFailureKeepsPriorState(t *testing.T) {
	s := newStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
	}))
	s.manager.Restore()

	err := s.manager.Login(context.Background(), "a@b.com", "bad")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
	assert.Equal(t, session.StateUnauthenticated, s.manager.State())
	assert.Zero(t, s.mem.Len())
}

func TestManager_PersistFailureDoesNotDowngradeSession(t *testing.T) {
	srv := httptest.NewServer(loginOK(t))
	t.Cleanup(srv.Close)

	broken := &failingStorage{}
	store := credstore.New(broken, logger.Nop())
	gw := gateway.New(gateway.Config{BaseURL: srv.URL}, store, logger.Nop())
	facades := api.New(gw, logger.Nop())
	m := session.NewManager(store, facades.Auth, logger.Nop())
	m.Restore()

	require.NoError(t, m.Login(context.Background(), "a@b.com", "x"))

	// storage write failed, but the in-memory session stays authoritative
	assert.Equal(t, session.StateAuthenticated, m.State())
	assert.Equal(t, "T1", m.Token())
}

// failingStorage rejects every write.
type failingStorage struct{}

func (f *failingStorage) Get(string) (string, bool, error) { return "", false, nil }
func (f *failingStorage) Set(string, string) error         { return errors.New("disk full") }
func (f *failingStorage) Delete(string) error              { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_LogoutClearsEverythingAndRestarts(t *testing.T) {
	remoteCalled := false
	restarted := false
	s := newStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/logout" {
			remoteCalled = true
		}
		_, _ = w.Write([]byte(`{"token":"T1","user_type":"Super Admin","data":[]}`))
	}), session.WithRestart(func() { restarted = true }))
	s.manager.Restore()
	require.NoError(t, s.manager.Login(context.Background(), "a@b.com", "x"))

	s.manager.Logout(context.Background(), false)

	assert.True(t, remoteCalled)
	assert.True(t, restarted)
	assert.Equal(t, session.StateUnauthenticated, s.manager.State())
	assert.Zero(t, s.mem.Len(), "token and record both gone")
	assert.Nil(t, s.manager.Record())
}

func TestManager_LogoutSkipRemote(t *testing.T) {
	remoteCalled := false
	s := newStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/logout" {
			remoteCalled = true
		}
		_, _ = w.Write([]byte(`{"token":"T1","user_type":"Super Admin","data":[]}`))
	}))
	s.manager.Restore()
	require.NoError(t, s.manager.Login(context.Background(), "a@b.com", "x"))

	s.manager.Logout(context.Background(), true)

	assert.False(t, remoteCalled, "skipRemote suppresses the API call")
	assert.Zero(t, s.mem.Len())
}

func TestManager_LogoutSucceedsDespiteRemoteFailure(t *testing.T) {
	s := newStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/logout" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"token":"T1","user_type":"Super Admin","data":[]}`))
	}))
	s.manager.Restore()
	require.NoError(t, s.manager.Login(context.Background(), "a@b.com", "x"))

	s.manager.Logout(context.Background(), false)

	assert.Equal(t, session.StateUnauthenticated, s.manager.State())
	assert.Zero(t, s.mem.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// In-session updates
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_UpdateUserMergesAndPersists(t *testing.T) {
	s := newStack(t, loginOK(t))
	s.manager.Restore()
	require.NoError(t, s.manager.Login(context.Background(), "a@b.com", "x"))

	name := "Priya"
	s.manager.UpdateUser(entity.SessionPatch{Name: &name})

	rec := s.manager.Record()
	require.NotNil(t, rec)
	assert.Equal(t, "Priya", rec.Name)
	assert.Equal(t, "a@b.com", rec.Email, "untouched fields survive the merge")

	_, persisted := s.store.Load()
	require.NotNil(t, persisted)
	assert.Equal(t, "Priya", persisted.Name)
	assert.Equal(t, session.StateAuthenticated, s.manager.State(), "no state transition")
}

func TestManager_UpdateCompaniesReplacesListAndPersists(t *testing.T) {
	s := newStack(t, loginOK(t))
	s.manager.Restore()
	require.NoError(t, s.manager.Login(context.Background(), "a@b.com", "x"))

	s.manager.UpdateCompanies([]entity.Company{{ID: "1", TenantID: "acme-corp", Status: "active"}})

	_, persisted := s.store.Load()
	require.NotNil(t, persisted)
	require.Len(t, persisted.Companies, 1)
	assert.Equal(t, "acme-corp", persisted.Companies[0].TenantID)
}

func TestManager_RefreshResyncsWithStorage(t *testing.T) {
	s := newStack(t, loginOK(t))
	s.manager.Restore()
	require.NoError(t, s.manager.Login(context.Background(), "a@b.com", "x"))

	// External mutation: the store is wiped behind the manager's back.
	s.store.Clear()
	s.manager.Refresh()

	assert.Equal(t, session.StateUnauthenticated, s.manager.State())
}
