package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// These variables will be set at build time using -ldflags
var (
	DefaultSampleFile = "TinyRick.png"
	DebugMode         = "false" // "true" or "false" as string (set at build time)
)

const (
	EnvProd = "prod"
	EnvDev  = "dev"

	UsernameVar = "PHOJI_USERNAME"
	PasswordVar = "PHOJI_PASSWORD"
)

// Endpoints is the pair of base URLs a Phoji environment is served from.
type Endpoints struct {
	APIURL    string
	StaticURL string
}

var (
	prodEndpoints = Endpoints{
		APIURL:    "https://api.phoji.app/graphql",
		StaticURL: "https://static.phoji.app/",
	}
	devEndpoints = Endpoints{
		APIURL:    "https://dev.api.phoji.app/graphql",
		StaticURL: "https://dev.static.phoji.app/",
	}
)

// Credentials holds the email/password pair used to authenticate.
type Credentials struct {
	Username string `env:"PHOJI_USERNAME"`
	Password string `env:"PHOJI_PASSWORD"`
}

// Config represents the application configuration
type Config struct {
	Environment string `env:"PHOJI_ENV" envDefault:"prod"`
	Credentials
	Debug      bool   `env:"PHOJI_DEBUG"`
	LogFormat  string `env:"PHOJI_LOG_FORMAT" envDefault:"text"`
	SampleFile string

	Endpoints Endpoints
}

// Load returns the application configuration.
// A .env file in the working directory is read first; variables already set
// in the process environment take precedence over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Environment = strings.ToLower(cfg.Environment)
	cfg.Endpoints = Resolve(cfg.Environment)
	cfg.SampleFile = DefaultSampleFile
	cfg.Debug = cfg.Debug || IsDebugMode()

	return cfg, nil
}

// Resolve maps an environment flag onto its endpoints. The flag is compared
// case-insensitively and unrecognized values fall back to production.
func Resolve(environment string) Endpoints {
	switch strings.ToLower(strings.TrimSpace(environment)) {
	case EnvDev, "development":
		return devEndpoints
	default:
		return prodEndpoints
	}
}

// IsProd reports whether the configuration targets production.
func (c *Config) IsProd() bool {
	return c.Endpoints == prodEndpoints
}

// MissingCredentials returns the names of required variables that are unset,
// username first.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.Username == "" {
		missing = append(missing, UsernameVar)
	}
	if c.Password == "" {
		missing = append(missing, PasswordVar)
	}
	return missing
}

// IsDebugMode returns true if debug mode is enabled at build time
func IsDebugMode() bool {
	return DebugMode == "true"
}
