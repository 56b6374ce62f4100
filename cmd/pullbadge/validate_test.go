package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunValidate_ValidConfig(t *testing.T) {
	path := writeConfig(t, "badges.yaml", `
endpoints:
  api_base: https://ghcr.example.com/api
badges:
  - repository: https://github.com/acme/widget
  - repository: https://github.com/acme/gadget
    package: gadget-server
`)

	stdout, _, err := execute(t, "", "validate", "-c", path)
	require.NoError(t, err)

	for _, phrase := range []string{
		"Config is valid!",
		"Endpoints: 1 overridden",
		"Badges:    2",
		"- acme/widget (widget)",
		"- acme/gadget (gadget-server)",
	} {
		assert.Contains(t, stdout, phrase)
	}
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "invalid.yaml", `
badges:
  - repository: https://github.com/acme
`)

	_, _, err := execute(t, "", "validate", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "badges[0]")
}

func TestRunValidate_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "validate", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestRunValidate_EnvFile(t *testing.T) {
	env := writeConfig(t, "pullbadge.env", "PULLBADGE_CLI_TEST_OWNER=acme\n")
	path := writeConfig(t, "badges.yaml", `
badges:
  - repository: https://github.com/${PULLBADGE_CLI_TEST_OWNER}/widget
`)
	t.Cleanup(func() { _ = os.Unsetenv("PULLBADGE_CLI_TEST_OWNER") })

	stdout, _, err := execute(t, "", "validate", "-c", path, "--env-file", env)
	require.NoError(t, err)
	assert.Contains(t, stdout, "- acme/widget (widget)")
}

func TestRunValidate_RequiresConfigFlag(t *testing.T) {
	_, _, err := execute(t, "", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "config" not set`)
}
