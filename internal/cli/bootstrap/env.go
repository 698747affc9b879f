// Package bootstrap wires the pieces a command runs on: durable storage,
// the rehydrated session and an API client bound to it.
package bootstrap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"Insightly/internal/cli/api"
	"Insightly/internal/cli/session"
	"Insightly/internal/cli/store"
	"Insightly/internal/config"
)

// ErrNotLoggedIn is returned when a command requiring identity runs without
// an authenticated session.
var ErrNotLoggedIn = errors.New("not logged in: run login or register first")

// Env bundles the session store and the API client for one command run.
type Env struct {
	Session *session.Store
	API     *api.Client
}

// Open opens the client DB, rehydrates the session and builds an API client
// sourcing its bearer token from it. Returns (env, cleanup, error); cleanup
// must be called when the command is done.
func Open(cfg *config.Config) (*Env, func() error, error) {
	kv, err := store.Open(cfg.ClientDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open client db: %w", err)
	}
	if err := kv.Migrate(); err != nil {
		_ = kv.Close()
		return nil, nil, fmt.Errorf("migrate client db: %w", err)
	}
	sess := session.New(kv)
	client := api.New(cfg.ServerURL, sess.Token, Logger(cfg))
	cleanup := func() error { return kv.Close() }
	return &Env{Session: sess, API: client}, cleanup, nil
}

// RequireAuth fails unless the session is authenticated.
func (e *Env) RequireAuth() error {
	if !e.Session.IsAuthenticated() {
		return ErrNotLoggedIn
	}
	return nil
}

// Logger builds the client logger: a development logger at debug level when
// verbose is on, otherwise a nop.
func Logger(cfg *config.Config) *zap.SugaredLogger {
	if cfg == nil || !cfg.Verbose {
		return zap.NewNop().Sugar()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}
