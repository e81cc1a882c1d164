// Package credstore persists the auth token and session record. It is the
// only mutable state shared between the gateway and the session manager,
// and it heals itself: a corrupt or half-written pair is cleared on load
// instead of being surfaced to callers.
package credstore

import (
	"encoding/json"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
	"github.com/mydailybill/mdb-admin/pkg/logger"
)

// Storage keys. TokenKey and UserKey are always written and cleared as a
// pair: a session record exists if and only if a token does.
const (
	TokenKey = "mdb_admin_token"
	UserKey  = "mdb_admin_user"
)

// legacyKeys were written by earlier console builds and are removed on
// every clear so stale sessions cannot resurface.
var legacyKeys = []string{"token", "authToken", "user", "userToken", "access_token"}

// Store reads and writes the credential pair on top of a Storage backend.
type Store struct {
	st  Storage
	log *logger.Logger
}

// New builds a credential store.
func New(st Storage, log *logger.Logger) *Store {
	return &Store{st: st, log: log}
}

// Save writes the token and the serialized session record together. If the
// second write fails the first is rolled back so the pair invariant holds.
func (s *Store) Save(token string, rec *entity.SessionRecord) error {
	blob, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := s.st.Set(TokenKey, token); err != nil {
		return err
	}
	if err := s.st.Set(UserKey, string(blob)); err != nil {
		if derr := s.st.Delete(TokenKey); derr != nil {
			s.log.Warn().Err(derr).Msg("credstore: rollback of token write failed")
		}
		return err
	}
	return nil
}

// Load returns the stored pair, or ("", nil) when no valid session exists.
// It never fails past this boundary: a corrupt record or a half-written
// pair is logged as a warning and the store clears itself.
func (s *Store) Load() (string, *entity.SessionRecord) {
	token, okT, errT := s.st.Get(TokenKey)
	blob, okU, errU := s.st.Get(UserKey)
	if errT != nil || errU != nil {
		s.log.Warn().AnErr("token_err", errT).AnErr("user_err", errU).
			Msg("credstore: storage read failed, treating session as absent")
		return "", nil
	}

	hasToken := okT && token != ""
	hasUser := okU && blob != ""
	if !hasToken && !hasUser {
		return "", nil
	}
	if hasToken != hasUser {
		s.log.Warn().Msg("credstore: half-written session pair, clearing")
		s.Clear()
		return "", nil
	}

	var rec entity.SessionRecord
	if err := json.Unmarshal([]byte(blob), &rec); err != nil {
		s.log.Warn().Err(err).Msg("credstore: corrupt session record, clearing")
		s.Clear()
		return "", nil
	}
	return token, &rec
}

// Token returns the bearer token, or "" when absent. Used by the gateway on
// every request.
func (s *Store) Token() string {
	token, ok, err := s.st.Get(TokenKey)
	if err != nil || !ok {
		return ""
	}
	return token
}

// Clear removes the pair plus any legacy key names. Best effort: individual
// delete failures are logged and do not stop the sweep.
func (s *Store) Clear() {
	keys := append([]string{TokenKey, UserKey}, legacyKeys...)
	for _, key := range keys {
		if err := s.st.Delete(key); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("credstore: delete failed")
		}
	}
}
