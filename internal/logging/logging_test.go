package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mendly.log")

	log, err := New(Options{File: path, Level: "warn"})
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"shown"`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mendly.log")

	log, err := New(Options{File: path, Level: "error", Verbose: true})
	require.NoError(t, err)
	log.Debug("details")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"level":"debug"`))
}

func TestNew_NoFileIsNop(t *testing.T) {
	log, err := New(Options{})
	require.NoError(t, err)
	log.Error("dropped")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}
