package credstore_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/credstore"
	"github.com/mydailybill/mdb-admin/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newStore(t *testing.T) (*credstore.Store, *credstore.Memory) {
	t.Helper()
	mem := credstore.NewMemory()
	return credstore.New(mem, logger.Nop()), mem
}

func sampleRecord() *entity.SessionRecord {
	return &entity.SessionRecord{
		UserType: "Super Admin",
		Email:    "a@b.com",
		Name:     "Super Admin",
		LoginTime: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Companies: []entity.Company{
			{ID: "1", TenantID: "acme-corp", Name: "Acme Corporation", Status: "active"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Round-trip and atomicity
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_SaveThenLoadRoundTrips(t *testing.T) {
	store, _ := newStore(t)
	rec := sampleRecord()

	require.NoError(t, store.Save("T1", rec))

	token, loaded := store.Load()
	assert.Equal(t, "T1", token)
	require.NotNil(t, loaded)
	assert.Equal(t, rec, loaded)
}

func TestStore_SaveWritesBothKeys(t *testing.T) {
	store, mem := newStore(t)
	require.NoError(t, store.Save("T1", sampleRecord()))

	_, okToken, _ := mem.Get(credstore.TokenKey)
	_, okUser, _ := mem.Get(credstore.UserKey)
	assert.True(t, okToken)
	assert.True(t, okUser)
}

func TestStore_ClearRemovesPairAndLegacyKeys(t *testing.T) {
	store, mem := newStore(t)
	require.NoError(t, store.Save("T1", sampleRecord()))
	for _, legacy := range []string{"token", "authToken", "user", "userToken", "access_token"} {
		require.NoError(t, mem.Set(legacy, "stale"))
	}

	store.Clear()

	assert.Zero(t, mem.Len())
	assert.Empty(t, store.Token())
}

// ──────────────────────────────────────────────────────────────────────────────
// Self-healing on corruption
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_CorruptRecordClearsStorage(t *testing.T) {
	store, mem := newStore(t)
	require.NoError(t, mem.Set(credstore.TokenKey, "T1"))
	require.NoError(t, mem.Set(credstore.UserKey, "{not json"))

	token, rec := store.Load()

	assert.Empty(t, token)
	assert.Nil(t, rec)
	assert.Zero(t, mem.Len(), "corrupt pair must be cleared")
}

func TestStore_HalfWrittenPairClearsStorage(t *testing.T) {
	cases := []struct {
		name string
		key  string
	}{
		{"token without record", credstore.TokenKey},
		{"record without token", credstore.UserKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, mem := newStore(t)
			require.NoError(t, mem.Set(tc.key, `"whatever"`))

			token, rec := store.Load()

			assert.Empty(t, token)
			assert.Nil(t, rec)
			assert.Zero(t, mem.Len())
		})
	}
}

func TestStore_EmptyStorageLoadsAbsent(t *testing.T) {
	store, _ := newStore(t)
	token, rec := store.Load()
	assert.Empty(t, token)
	assert.Nil(t, rec)
}

// ──────────────────────────────────────────────────────────────────────────────
// File-backed storage
// ──────────────────────────────────────────────────────────────────────────────

func TestFileStorage_RoundTripAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")

	first := credstore.New(credstore.NewFileStorage(path), logger.Nop())
	require.NoError(t, first.Save("T9", sampleRecord()))

	// A new instance over the same file sees the session (durable storage).
	second := credstore.New(credstore.NewFileStorage(path), logger.Nop())
	token, rec := second.Load()
	assert.Equal(t, "T9", token)
	require.NotNil(t, rec)
	assert.Equal(t, "a@b.com", rec.Email)

	second.Clear()
	token, rec = first.Load()
	assert.Empty(t, token)
	assert.Nil(t, rec)
}
