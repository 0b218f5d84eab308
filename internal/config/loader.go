package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration with the following priority (highest first):
// environment variables (SITTER_TREE_*), the config file, defaults.
// file may be empty, in which case sitter-tree.yaml is searched in the
// working directory and the home directory; a missing file is fine.
func Load(file string) (*Config, error) {
	v := viper.New()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("sitter-tree")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("SITTER_TREE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is acceptable unless it was named
		// explicitly; defaults plus environment carry the run.
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if file != "" || !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setDefaults configures viper with the Default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("languages", defaults.Languages)
	v.SetDefault("ignore", defaults.Ignore)
	v.SetDefault("overview.forward_decls", defaults.Overview.ForwardDecls)
	v.SetDefault("watch.enabled", defaults.Watch.Enabled)
	v.SetDefault("watch.paths", defaults.Watch.Paths)
	v.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)
}
