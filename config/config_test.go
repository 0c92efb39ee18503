package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("TEMPLATES_DIR", "")
	assert.Equal(t, Config{TemplatesDir: DefaultTemplatesDir}, FromEnv())
}

func TestFromEnvOverride(t *testing.T) {
	t.Setenv("TEMPLATES_DIR", "/srv/templates")
	assert.Equal(t, Config{TemplatesDir: "/srv/templates"}, FromEnv())
}
