package config

// ConfigSource names a configuration layer.
type ConfigSource string

const (
	SourceDefault ConfigSource = "default"
	SourceGlobal  ConfigSource = "global"
	SourceProject ConfigSource = "project"
)

// LayeredConfig holds each configuration layer separately along with the
// merged result.
type LayeredConfig struct {
	Default   *Config
	Global    *Config
	Project   *Config
	Final     *Config
	FilePaths map[ConfigSource]string
}

// mergeConfigs merges override configuration into base. Scalars are replaced
// when set, key overrides and extensions are merged per key.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Catalog != "" {
		result.Catalog = override.Catalog
	}
	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Filter.Mode != "" {
		result.Filter.Mode = override.Filter.Mode
	}
	if override.Filter.Initial != nil {
		result.Filter.Initial = append([]string(nil), override.Filter.Initial...)
	}
	if override.Animation.Leave != 0 {
		result.Animation.Leave = override.Animation.Leave
	}
	if override.Animation.Enter != 0 {
		result.Animation.Enter = override.Animation.Enter
	}
	if override.Watch != nil {
		watch := *override.Watch
		result.Watch = &watch
	}

	if len(override.Keys) > 0 {
		keys := make(KeybindingSectionConfig, len(base.Keys)+len(override.Keys))
		for action, combo := range base.Keys {
			keys[action] = combo
		}
		for action, combo := range override.Keys {
			keys[action] = combo
		}
		result.Keys = keys
	}

	if len(override.Extensions) > 0 {
		ext := make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for k, v := range base.Extensions {
			ext[k] = v
		}
		for k, v := range override.Extensions {
			ext[k] = v
		}
		result.Extensions = ext
	}

	return &result
}
