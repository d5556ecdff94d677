// Package config loads server settings and the four platform credentials.
// Settings come from an optional YAML file; credentials come exclusively
// from the environment (with .env autoload) and never touch disk here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/finchline/finchline/internal/xapi"
)

// Version is stamped into the MCP handshake.
const Version = "0.1.0"

// Environment variables holding the OAuth 1.0a user context.
const (
	EnvAPIKey       = "X_API_KEY"
	EnvAPISecret    = "X_API_SECRET"
	EnvAccessToken  = "X_ACCESS_TOKEN"
	EnvAccessSecret = "X_ACCESS_SECRET"
)

// Config holds everything the server needs to start.
type Config struct {
	ServerName string `yaml:"serverName"`
	HTTPAddr   string `yaml:"httpAddr"`
	// RosterPageSize is the default number of accounts returned by the
	// follower/following listings; zero means the built-in default of 20.
	RosterPageSize int    `yaml:"rosterPageSize"`
	Version        string `yaml:"-"`

	// Credentials are environment-only, never part of the YAML file.
	APIKey       string `yaml:"-"`
	APISecret    string `yaml:"-"`
	AccessToken  string `yaml:"-"`
	AccessSecret string `yaml:"-"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() Config {
	return Config{
		ServerName: "finchline",
		Version:    Version,
	}
}

// ConfigPath returns the default configuration file path: ~/.finchline/config.yaml.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".finchline/config.yaml"
	}
	return filepath.Join(home, ".finchline", "config.yaml")
}

// Load reads the YAML settings at path (ConfigPath() when empty), then
// overlays credentials from the environment. A missing file yields the
// defaults; an unreadable or invalid file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.ServerName == "" {
			cfg.ServerName = DefaultConfig().ServerName
		}
	}

	// .env is a convenience for local runs; absence is not an error.
	_ = godotenv.Load()

	cfg.APIKey = os.Getenv(EnvAPIKey)
	cfg.APISecret = os.Getenv(EnvAPISecret)
	cfg.AccessToken = os.Getenv(EnvAccessToken)
	cfg.AccessSecret = os.Getenv(EnvAccessSecret)
	return &cfg, nil
}

// Credentials exposes the credential set in the adapter's shape.
func (c *Config) Credentials() xapi.Credentials {
	return xapi.Credentials{
		APIKey:       c.APIKey,
		APISecret:    c.APISecret,
		AccessToken:  c.AccessToken,
		AccessSecret: c.AccessSecret,
	}
}

// Validate demands all four credentials before the server may start.
func (c *Config) Validate() error {
	missing := []string{}
	for _, v := range []struct {
		env string
		val string
	}{
		{EnvAPIKey, c.APIKey},
		{EnvAPISecret, c.APISecret},
		{EnvAccessToken, c.AccessToken},
		{EnvAccessSecret, c.AccessSecret},
	} {
		if v.val == "" {
			missing = append(missing, v.env)
		}
	}
	if len(missing) > 0 {
		return errors.New("missing credentials: set " + strings.Join(missing, ", "))
	}
	return nil
}
