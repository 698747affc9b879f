package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"Insightly/internal/cli/bootstrap"
	"Insightly/internal/cli/model"
	"Insightly/internal/config"
)

// testCfg builds a config pointed at a test server and a temp client DB.
func testCfg(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL:       serverURL,
		ClientDBPath:    filepath.Join(t.TempDir(), "client.sqlite"),
		AvatarMaxSizeMB: 2,
	}
}

// captureOut redirects command output into a buffer for the test's lifetime.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := Out
	buf := &bytes.Buffer{}
	Out = buf
	t.Cleanup(func() { Out = prev })
	return buf
}

// seedSession logs a user into the client DB the commands will open.
func seedSession(t *testing.T, cfg *config.Config, token string, user *model.UserProfile) {
	t.Helper()
	env, done, err := bootstrap.Open(cfg)
	if err != nil {
		t.Fatalf("open env: %v", err)
	}
	defer done()
	if err := env.Session.Login(token, user); err != nil {
		t.Fatalf("seed session: %v", err)
	}
}

// stubPassword makes the password prompt return pw without a terminal.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	prev := readPassword
	readPassword = func() ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = prev })
}
