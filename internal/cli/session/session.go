// Package session holds the authenticated user's identity and bearer token
// and keeps them in sync with durable client storage, so a later run of the
// client starts out logged in.
package session

import (
	"encoding/json"

	"Insightly/internal/cli/model"
	"Insightly/internal/cli/store"
)

// snapshot is the whole-state record persisted under store.SessionKey.
type snapshot struct {
	User            *model.UserProfile `json:"user"`
	Token           string             `json:"token"`
	IsAuthenticated bool               `json:"isAuthenticated"`
}

// Store is the client session. It is constructed explicitly and handed to
// whatever needs identity or the token; there is no package-level state.
type Store struct {
	kv    *store.KV
	user  *model.UserProfile
	token string
}

// New builds a session over kv and rehydrates it from the persisted
// snapshot, if one exists. A broken snapshot is treated as logged out.
func New(kv *store.KV) *Store {
	s := &Store{kv: kv}
	raw, ok, err := kv.Get(store.SessionKey)
	if err != nil || !ok {
		return s
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return s
	}
	if snap.IsAuthenticated && snap.User != nil && snap.Token != "" {
		s.user = snap.User
		s.token = snap.Token
	}
	return s
}

// Login persists token under its own key, then sets the in-memory state and
// writes the whole-state snapshot. Both writes belong to the same operation
// so the persisted token and the in-memory one never diverge.
func (s *Store) Login(token string, user *model.UserProfile) error {
	if err := s.kv.Set(store.TokenKey, []byte(token)); err != nil {
		return err
	}
	s.user = user
	s.token = token
	return s.persist()
}

// Logout removes the persisted token and clears the session. Calling it when
// already logged out is a no-op side-effect-wise.
func (s *Store) Logout() error {
	if err := s.kv.Delete(store.TokenKey); err != nil {
		return err
	}
	s.user = nil
	s.token = ""
	return s.persist()
}

// UpdateUser replaces the cached profile without touching the token.
func (s *Store) UpdateUser(user *model.UserProfile) error {
	s.user = user
	return s.persist()
}

// User returns the cached profile, nil when logged out.
func (s *Store) User() *model.UserProfile { return s.user }

// Token returns the bearer token, "" when logged out.
func (s *Store) Token() string { return s.token }

// IsAuthenticated reports whether both a profile and a token are present.
func (s *Store) IsAuthenticated() bool { return s.user != nil && s.token != "" }

func (s *Store) persist() error {
	snap := snapshot{
		User:            s.user,
		Token:           s.token,
		IsAuthenticated: s.IsAuthenticated(),
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.kv.Set(store.SessionKey, raw)
}
