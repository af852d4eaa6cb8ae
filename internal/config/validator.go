package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/opmodel/skel/internal/answers"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks cfg against the answer vocabulary and path rules.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	keys := make([]string, 0, len(cfg.DefaultContext))
	for k := range cfg.DefaultContext {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := answers.Normalize(k, cfg.DefaultContext[k]); err != nil {
			errs = append(errs, ValidationError{
				Field:   "defaultContext." + k,
				Message: strings.TrimPrefix(err.Error(), fmt.Sprintf("option %q: ", k)),
			})
		}
	}

	if cfg.ReplayDir != "" && strings.TrimSpace(cfg.ReplayDir) == "" {
		errs = append(errs, ValidationError{
			Field:   "replayDir",
			Message: "must not be empty or whitespace only",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateFile loads and validates a configuration file.
func ValidateFile(path string) error {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	return Validate(cfg)
}
