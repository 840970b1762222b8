// Package config resolves the client configuration: the remote service base
// address plus logging and UI-state locations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	AppName        = "todo"
	ConfigFileName = "config.yaml"
)

type Config struct {
	BaseURL  string `yaml:"baseUrl,omitempty" json:"baseUrl" validate:"required,http_url"`
	LogFile  string `yaml:"logFile,omitempty" json:"logFile,omitempty"`
	LogLevel string `yaml:"logLevel,omitempty" json:"logLevel" validate:"omitempty,oneof=debug info warn error"`
	StateDir string `yaml:"stateDir,omitempty" json:"stateDir"`

	// Path is the file the config was read from (empty if none existed).
	Path string `yaml:"-" json:"path,omitempty"`
}

// ConfigurationError means the client cannot start talking to the service.
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return "API not configured: " + e.Reason
}

// DefaultDir returns $XDG_CONFIG_HOME/todo, falling back to ~/.config/todo.
func DefaultDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func DefaultPath() string { return filepath.Join(DefaultDir(), ConfigFileName) }

// Load reads the YAML file at path (DefaultPath when empty) and overlays the
// non-empty fields of overrides. A missing file is not an error.
func Load(path string, overrides Config) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}

	cfg := &Config{}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.Path = path
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if v := strings.TrimSpace(overrides.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(overrides.LogFile); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(overrides.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(overrides.StateDir); v != "" {
		cfg.StateDir = v
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.StateDir == "" {
		cfg.StateDir = filepath.Dir(path)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory.
func Save(path string, cfg Config) error {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

var placeholderRe = regexp.MustCompile(`<[A-Za-z0-9_ -]+>`)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate returns a ConfigurationError when the base address is missing, still
// a template placeholder (e.g. "<API_GATEWAY_URL>"), or not an http(s) URL.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ConfigurationError{Reason: "set baseUrl in " + displayPath(c.Path) + " or pass --base-url (env TODO_API_BASE)"}
	}
	if placeholderRe.MatchString(c.BaseURL) {
		return ConfigurationError{Reason: fmt.Sprintf("baseUrl is still a placeholder (%s)", c.BaseURL)}
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return ConfigurationError{Reason: fmt.Sprintf("invalid %s %q (%s)", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag())}
		}
		return ConfigurationError{Reason: err.Error()}
	}
	return nil
}

func displayPath(p string) string {
	if p == "" {
		return DefaultPath()
	}
	return p
}
