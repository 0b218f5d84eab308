// Package config loads the tool configuration from file, environment and
// defaults.
package config

// Config is the complete sitter-tree configuration. It can be loaded from
// a YAML file with SITTER_TREE_* environment variable overrides.
type Config struct {
	// Languages restricts the registered language set by name. Empty
	// means every built-in language.
	Languages []string `yaml:"languages" mapstructure:"languages"`
	// Ignore lists glob patterns excluded from directory walks and the
	// invalidation watcher.
	Ignore   []string       `yaml:"ignore" mapstructure:"ignore"`
	Overview OverviewConfig `yaml:"overview" mapstructure:"overview"`
	Watch    WatchConfig    `yaml:"watch" mapstructure:"watch"`
}

// OverviewConfig tunes the overview projection.
type OverviewConfig struct {
	// ForwardDecls counts body-less prototypes as definitions. Whether a
	// forward declaration belongs in an overview is a per-deployment
	// choice, so it is a switch rather than a fixed rule.
	ForwardDecls bool `yaml:"forward_decls" mapstructure:"forward_decls"`
}

// WatchConfig configures the optional cache-invalidation watcher.
type WatchConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Paths are the roots to watch. Empty defaults to the working
	// directory.
	Paths      []string `yaml:"paths" mapstructure:"paths"`
	DebounceMs int      `yaml:"debounce_ms" mapstructure:"debounce_ms"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Ignore: []string{
			".git/**",
			"node_modules/**",
			"build/**",
			"dist/**",
			"__pycache__/**",
		},
		Overview: OverviewConfig{
			ForwardDecls: true,
		},
		Watch: WatchConfig{
			Enabled:    false,
			DebounceMs: 500,
		},
	}
}
