package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// KeybindingSectionConfig maps action names (e.g. "next", "clear_filter") to
// key combinations.
type KeybindingSectionConfig map[string][]string

// FilterConfig controls category filtering.
type FilterConfig struct {
	// Mode is "single" (at most one active category) or "multi" (union of
	// the selected categories).
	Mode string `yaml:"mode,omitempty" toml:"mode,omitempty"`
	// Initial lists the categories selected at startup. Empty means all.
	Initial []string `yaml:"initial,omitempty" toml:"initial,omitempty"`
}

// AnimationConfig holds the durations of the two transition phases.
type AnimationConfig struct {
	Leave Duration `yaml:"leave,omitempty" toml:"leave,omitempty"`
	Enter Duration `yaml:"enter,omitempty" toml:"enter,omitempty"`
}

// Config is the cardvice configuration file.
type Config struct {
	// Catalog is the path to an advice catalog. Empty uses the built-in one.
	Catalog   string                  `yaml:"catalog,omitempty" toml:"catalog,omitempty"`
	Filter    FilterConfig            `yaml:"filter,omitempty" toml:"filter,omitempty"`
	Animation AnimationConfig         `yaml:"animation,omitempty" toml:"animation,omitempty"`
	Theme     string                  `yaml:"theme,omitempty" toml:"theme,omitempty"`
	Keys      KeybindingSectionConfig `yaml:"keys,omitempty" toml:"keys,omitempty"`
	// Watch reloads the catalog when its file changes.
	Watch *bool `yaml:"watch,omitempty" toml:"watch,omitempty"`

	// Extensions captures all other top-level keys, e.g. "logging".
	Extensions map[string]interface{} `yaml:",inline" toml:"-"`
}

const (
	DefaultLeave = 300 * time.Millisecond
	DefaultEnter = 300 * time.Millisecond
)

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Filter.Mode == "" {
		c.Filter.Mode = "single"
	}
	if c.Animation.Leave == 0 {
		c.Animation.Leave = Duration(DefaultLeave)
	}
	if c.Animation.Enter == 0 {
		c.Animation.Enter = Duration(DefaultEnter)
	}
	if c.Watch == nil {
		watch := true
		c.Watch = &watch
	}
}

// WatchEnabled reports whether catalog hot reload is on.
func (c *Config) WatchEnabled() bool {
	return c.Watch == nil || *c.Watch
}

// UnmarshalExtension decodes a specific extension's configuration into the
// provided target struct. The target must be a pointer. Missing keys leave the
// target untouched.
//
// Example:
//
//	var logCfg logging.Config
//	cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// Duration is a time.Duration written as "300ms" in config files.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalYAML accepts duration strings.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML writes the duration in its string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalText is used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText writes the duration in its string form.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
