// Package config loads settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target, a pointer to a struct with env tags, from the
// environment.
func ParseEnv(target any) error {
	return ParseEnvPrefix("", target)
}

// ParseEnvPrefix is ParseEnv with prefix prepended to every env tag,
// so LEVEL under prefix "LOG_" reads LOG_LEVEL
func ParseEnvPrefix(prefix string, target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		if prefix != "" {
			return fmt.Errorf("parse env %s*: %w", prefix, err)
		}
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
