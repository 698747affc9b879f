package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Derived from BaseURL + EnableHTTPS, not settable directly.
	ServerURL string `env:"-"`

	ClientDBPath    string `env:"CLIENT_DB_PATH"`
	AvatarMaxSizeMB int64  `env:"AVATAR_MAX_MB"`
	Verbose         bool   `env:"VERBOSE"`
	Version         bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags apply on top of env values
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the Insightly API server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "prefer https scheme for BaseURL")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to the client SQLite DB file")
	flag.Int64Var(&cfg.AvatarMaxSizeMB, "avatar-max-mb", cfg.AvatarMaxSizeMB, "max avatar file size in MB")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging of HTTP requests")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "show client version and exit")

	flag.Parse()

	// validate BaseURL: must be "address:port" (no scheme, no path), otherwise use default
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.AvatarMaxSizeMB <= 0 {
		cfg.AvatarMaxSizeMB = 2
	}
	if cfg.ClientDBPath == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.ClientDBPath = filepath.Join(dir, "Insightly", "client.sqlite")
		}
	}

	return cfg
}
