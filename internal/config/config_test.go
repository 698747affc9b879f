package config

import (
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlagSet creates a fresh FlagSet before each NewConfig call so that
// flags are not registered twice between tests.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("CLIENT_DB_PATH", "")
	t.Setenv("AVATAR_MAX_MB", "")
	t.Setenv("VERBOSE", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8080" {
		t.Fatalf("BaseURL default expected 'localhost:8080', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8080" {
		t.Fatalf("ServerURL default expected 'http://localhost:8080', got %q", cfg.ServerURL)
	}
	if cfg.AvatarMaxSizeMB != 2 {
		t.Fatalf("AvatarMaxSizeMB default expected 2, got %d", cfg.AvatarMaxSizeMB)
	}
	if cfg.ClientDBPath == "" {
		t.Fatalf("ClientDBPath default must be non-empty")
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AVATAR_MAX_MB", "10")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:443" {
		t.Fatalf("BaseURL expected 'example.com:443', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AvatarMaxSizeMB != 10 {
		t.Fatalf("AvatarMaxSizeMB expected 10, got %d", cfg.AvatarMaxSizeMB)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// BASE_URL with a scheme is invalid and must fall back to localhost:8080
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8080" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8080', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8080") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}

func TestNewConfig_ClientDBPathFromEnv(t *testing.T) {
	t.Setenv("BASE_URL", "")
	t.Setenv("CLIENT_DB_PATH", "/tmp/custom.sqlite")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ClientDBPath != "/tmp/custom.sqlite" {
		t.Fatalf("ClientDBPath expected from env, got %q", cfg.ClientDBPath)
	}
}
