package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrInvalidIgnorePattern indicates an ignore glob that does not compile
	ErrInvalidIgnorePattern = errors.New("invalid ignore pattern")

	// ErrInvalidDebounce indicates an invalid watcher debounce interval
	ErrInvalidDebounce = errors.New("invalid watch debounce")

	// ErrEmptyLanguage indicates a blank entry in the language allow-list
	ErrEmptyLanguage = errors.New("empty language name")
)

// Validate checks that the configuration is well-formed. Whether the
// allow-listed languages actually exist is checked by the registry, which
// owns the built-in set.
func Validate(cfg *Config) error {
	var errs []error

	for _, name := range cfg.Languages {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("%w: languages entries must be non-empty", ErrEmptyLanguage))
		}
	}

	for _, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidIgnorePattern, pattern, err))
		}
	}

	if cfg.Watch.DebounceMs <= 0 {
		errs = append(errs, fmt.Errorf("%w: debounce_ms must be positive, got %d", ErrInvalidDebounce, cfg.Watch.DebounceMs))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
