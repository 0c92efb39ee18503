// Package config reads the module's environment-backed configuration.
// Configuration is read once at startup and treated as immutable.
package config

import "os"

// Default values, overridable through the environment variables of the
// same names.
const (
	// DefaultTemplatesDir is where render looks for templates when
	// TEMPLATES_DIR is unset.
	DefaultTemplatesDir = "templates"
)

// Config holds the resolved configuration.
type Config struct {
	// TemplatesDir is the directory render reads templates from.
	TemplatesDir string
}

// FromEnv resolves configuration from the environment, falling back to
// defaults.
func FromEnv() Config {
	cfg := Config{
		TemplatesDir: os.Getenv("TEMPLATES_DIR"),
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = DefaultTemplatesDir
	}
	return cfg
}
