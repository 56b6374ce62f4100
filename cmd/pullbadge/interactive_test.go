package main

import (
	"testing"

	"github.com/jpalmerr/pullbadge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractive_FullSession(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	script := `
repo https://github.com/acme/widget
load
label pulls
logo docker
copy direct-url
quit
`
	stdout, stderr, err := execute(t, script, "interactive", "--no-color", "--no-animate")
	require.NoError(t, err)

	assert.Contains(t, stdout, "• Enter the full URL of a GitHub repository.")
	assert.Contains(t, stdout, "✓ Ready: acme/widget")
	assert.Contains(t, stdout, "• Using widget as the default package. Adjust if the package name differs.")
	assert.Contains(t, stdout, "&label=pulls&logo=docker")
	assert.Contains(t, stdout, "» Copied to clipboard!")

	// OSC 52 sequence goes to stderr so it reaches the terminal
	assert.Contains(t, stderr, "\x1b]52;c;")
}

func TestInteractive_PrefillAndErrors(t *testing.T) {
	script := `
bogus
select missing
copy json-url
`
	stdout, _, err := execute(t, script, "interactive", "--no-color", "--no-animate",
		"--repo", "https://github.com/acme/widget")
	require.NoError(t, err)

	assert.Contains(t, stdout, "✓ Ready: acme/widget")
	assert.Contains(t, stdout, `✗ unknown event: "bogus"`)
	assert.Contains(t, stdout, "✗ ")
	assert.Contains(t, stdout, "» Nothing to copy yet. Complete the steps above first.")
}

func TestInteractive_InvalidRepositoryAndHelp(t *testing.T) {
	stdout, _, err := execute(t, "repo not-a-url\nhelp\nshow\n", "interactive", "--no-color", "--no-animate")
	require.NoError(t, err)

	assert.Contains(t, stdout, "✗ Enter the full URL of a GitHub repository.")
	assert.Contains(t, stdout, "copy <field>")
	assert.Contains(t, stdout, "load: disabled")
}

func TestDetectMultiplexer(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
	assert.Equal(t, pullbadge.MultiplexerTmux, detectMultiplexer())

	t.Setenv("TMUX", "")
	t.Setenv("TERM", "screen-256color")
	assert.Equal(t, pullbadge.MultiplexerScreen, detectMultiplexer())

	t.Setenv("TERM", "xterm")
	assert.Equal(t, pullbadge.MultiplexerNone, detectMultiplexer())
}
