package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_FileThenOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "baseUrl: https://file.example/dev\nlogLevel: WARN\n")

	cfg, err := Load(path, Config{})
	require.NoError(t, err)
	assert.Equal(t, "https://file.example/dev", cfg.BaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, dir, cfg.StateDir)
	assert.Equal(t, path, cfg.Path)

	cfg, err = Load(path, Config{BaseURL: " http://flag.example ", LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")
	cfg, err := Load(path, Config{})
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Path)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "baseUrl: [unterminated\n")
	_, err := Load(path, Config{})
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo", "config.yaml")
	require.NoError(t, Save(path, Config{BaseURL: "http://127.0.0.1:8080", LogLevel: "debug"}))

	cfg, err := Load(path, Config{})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{BaseURL: "https://abc.execute-api.us-east-1.amazonaws.com/dev", LogLevel: "info"}, false},
		{"ok no level", Config{BaseURL: "http://localhost:8080"}, false},
		{"missing", Config{}, true},
		{"placeholder", Config{BaseURL: "https://<API_GATEWAY_URL>/dev"}, true},
		{"not a url", Config{BaseURL: "not a url"}, true},
		{"bad scheme", Config{BaseURL: "ftp://example.com"}, true},
		{"bad level", Config{BaseURL: "http://localhost", LogLevel: "trace"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			var cerr ConfigurationError
			require.True(t, errors.As(err, &cerr), "expected ConfigurationError, got %T: %v", err, err)
			assert.Contains(t, cerr.Error(), "API not configured")
		})
	}
}

func TestDefaultDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "todo"), DefaultDir())
	assert.Equal(t, filepath.Join("/tmp/xdg", "todo", "config.yaml"), DefaultPath())
}
