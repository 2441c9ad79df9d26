// Package config provides reading and writing of string-fns configuration.
// Supports both global (~/.string-fns/config.yaml) and local (./.string-fns.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.string-fns/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in ./.string-fns.yaml
	ScopeLocal
)

// History holds invocation-history configuration options.
type History struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Guide holds guide-rendering configuration options.
type Guide struct {
	Style string `yaml:"style,omitempty"`
}

// Allowed values for validated keys.
var (
	validOutputs     = []string{"text", "json"}
	validGuideStyles = []string{"auto", "dark", "light", "notty"}
)

// Config contains configuration for string-fns.
type Config struct {
	Output  string  `yaml:"output,omitempty"`
	History History `yaml:"history,omitempty"`
	Guide   Guide   `yaml:"guide,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Output != "" && !contains(validOutputs, c.Output) {
		return fmt.Errorf("%w: output must be one of %v, got %q", ErrInvalidValue, validOutputs, c.Output)
	}
	if c.Guide.Style != "" && !contains(validGuideStyles, c.Guide.Style) {
		return fmt.Errorf("%w: guide.style must be one of %v, got %q", ErrInvalidValue, validGuideStyles, c.Guide.Style)
	}
	return nil
}

// HistoryEnabled returns whether invocation history is recorded (defaults to true).
func (c *Config) HistoryEnabled() bool {
	if c.History.Enabled == nil {
		return true
	}
	return *c.History.Enabled
}

// GuideStyle returns the glamour style for guide rendering (defaults to "auto").
func (c *Config) GuideStyle() string {
	if c.Guide.Style == "" {
		return "auto"
	}
	return c.Guide.Style
}

// Get returns the value of a dotted config key as a display string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "output":
		return c.Output, nil
	case "history.enabled":
		return strconv.FormatBool(c.HistoryEnabled()), nil
	case "guide.style":
		return c.GuideStyle(), nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %v)", ErrUnknownKey, key, Keys())
	}
}

// Set assigns a dotted config key from its string representation.
// The change is not persisted until Save is called.
func (c *Config) Set(key, value string) error {
	switch key {
	case "output":
		c.Output = value
	case "history.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: history.enabled must be true or false, got %q", ErrInvalidValue, value)
		}
		c.History.Enabled = &b
	case "guide.style":
		c.Guide.Style = value
	default:
		return fmt.Errorf("%w: %q (valid: %v)", ErrUnknownKey, key, Keys())
	}
	return c.Validate()
}

// Keys returns the settable configuration keys.
func Keys() []string {
	return []string{"output", "history.enabled", "guide.style"}
}

// LocalPath returns the path to the local (per-directory) config file.
func LocalPath() string {
	return ".string-fns.yaml"
}

// GlobalPath returns the path to the global (user) config file: ~/.string-fns/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".string-fns", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
