package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func clearPhojiEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PHOJI_ENV", UsernameVar, PasswordVar, "PHOJI_DEBUG", "PHOJI_LOG_FORMAT"} {
		unsetEnv(t, key)
	}
	t.Chdir(t.TempDir())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		env  string
		want Endpoints
	}{
		{"", Endpoints{"https://api.phoji.app/graphql", "https://static.phoji.app/"}},
		{"prod", Endpoints{"https://api.phoji.app/graphql", "https://static.phoji.app/"}},
		{"PROD", Endpoints{"https://api.phoji.app/graphql", "https://static.phoji.app/"}},
		{"dev", Endpoints{"https://dev.api.phoji.app/graphql", "https://dev.static.phoji.app/"}},
		{"Dev", Endpoints{"https://dev.api.phoji.app/graphql", "https://dev.static.phoji.app/"}},
		{"development", Endpoints{"https://dev.api.phoji.app/graphql", "https://dev.static.phoji.app/"}},
		{"staging", Endpoints{"https://api.phoji.app/graphql", "https://static.phoji.app/"}},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.env))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	clearPhojiEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Environment)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "https://api.phoji.app/graphql", cfg.Endpoints.APIURL)
	assert.Equal(t, "https://static.phoji.app/", cfg.Endpoints.StaticURL)
	assert.Equal(t, "TinyRick.png", cfg.SampleFile)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.Debug)
	assert.Equal(t, []string{UsernameVar, PasswordVar}, cfg.MissingCredentials())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearPhojiEnv(t)
	t.Setenv("PHOJI_ENV", "DEV")
	t.Setenv(UsernameVar, "a@b.com")
	t.Setenv(PasswordVar, "pw")
	t.Setenv("PHOJI_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.False(t, cfg.IsProd())
	assert.Equal(t, "https://dev.api.phoji.app/graphql", cfg.Endpoints.APIURL)
	assert.Equal(t, "a@b.com", cfg.Username)
	assert.Equal(t, "pw", cfg.Password)
	assert.True(t, cfg.Debug)
	assert.Empty(t, cfg.MissingCredentials())
}

func TestLoadDotEnv(t *testing.T) {
	clearPhojiEnv(t)
	t.Setenv(PasswordVar, "from-process")

	dir, err := os.Getwd()
	require.NoError(t, err)
	content := "PHOJI_USERNAME=dotenv@b.com\nPHOJI_PASSWORD=from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0600))
	t.Cleanup(func() { _ = os.Unsetenv(UsernameVar) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dotenv@b.com", cfg.Username)
	assert.Equal(t, "from-process", cfg.Password)
}

func TestLoadParseError(t *testing.T) {
	clearPhojiEnv(t)
	t.Setenv("PHOJI_DEBUG", "not-a-bool")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestMissingCredentials(t *testing.T) {
	cfg := &Config{Credentials: Credentials{Password: "pw"}}
	assert.Equal(t, []string{UsernameVar}, cfg.MissingCredentials())

	cfg = &Config{Credentials: Credentials{Username: "a@b.com"}}
	assert.Equal(t, []string{PasswordVar}, cfg.MissingCredentials())
}
