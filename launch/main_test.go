package launch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	defaults := Options{Window: WindowOptions{Title: "Bounce"}}

	opts, err := ParseFlags("bounce", nil, defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, opts)

	opts, err = ParseFlags("bounce", []string{"-backend", "terminal", "-profile", "-log-level", "debug"}, defaults)
	require.NoError(t, err)
	assert.Equal(t, BackendTerminal, opts.Backend)
	assert.True(t, opts.Profile)
	assert.Equal(t, "debug", opts.Logging.Level)
	assert.Equal(t, "Bounce", opts.Window.Title)
}

func TestParseFlagsWithConfig(t *testing.T) {
	path := writeConfig(t, "backend: terminal\nwindow:\n  title: From File\n")

	opts, err := ParseFlags("noise", []string{"-config", path}, Options{})
	require.NoError(t, err)
	assert.Equal(t, BackendTerminal, opts.Backend)
	assert.Equal(t, "From File", opts.Window.Title)

	// the flag wins over the file
	opts, err = ParseFlags("noise", []string{"-config", path, "-backend", "desktop"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, BackendDesktop, opts.Backend)
}

func TestParseFlagsErrors(t *testing.T) {
	_, err := ParseFlags("noise", []string{"-backend", "browser"}, Options{})
	assert.EqualError(t, err, `unknown backend "browser"`)

	_, err = ParseFlags("noise", []string{"-unknown"}, Options{})
	assert.Error(t, err)
}
