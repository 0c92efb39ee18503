package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootInvalidFormat(t *testing.T) {
	_, _, err := runCommand(t, "--format", "csv", "formats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "csv"`)
}

func TestFormatsText(t *testing.T) {
	stdout, _, err := runCommand(t, "formats")
	require.NoError(t, err)
	for _, f := range []string{"ini", "json", "toml", "yaml", "yml"} {
		assert.Contains(t, stdout, f)
	}
}

func TestFormatsJSON(t *testing.T) {
	stdout, _, err := runCommand(t, "--format", "json", "formats")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"status":"ok"`)
	assert.Contains(t, stdout, `"formats":["ini","json","toml","yaml","yml"]`)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(&ExitError{Code: ExitCommandError}))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
}
