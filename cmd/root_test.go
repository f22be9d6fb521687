package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadi/mendly/internal/config"
)

func newTestCmd(t *testing.T, db string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().String("db", "", "")
	if db != "" {
		require.NoError(t, c.Flags().Set("db", db))
	}
	return c
}

func TestResolveDBPathOrder(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag", "a.db")
	envPath := filepath.Join(dir, "env", "b.db")
	cfgPath := filepath.Join(dir, "cfg", "c.db")

	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("MENDLY_DB", envPath)
	saved := cfg
	t.Cleanup(func() { cfg = saved })
	cfg = config.Config{Database: config.DatabaseConfig{Path: cfgPath}}

	got, err := resolveDBPath(newTestCmd(t, flagPath))
	require.NoError(t, err)
	assert.Equal(t, flagPath, got)
	assert.DirExists(t, filepath.Dir(flagPath))

	got, err = resolveDBPath(newTestCmd(t, ""))
	require.NoError(t, err)
	assert.Equal(t, envPath, got)

	t.Setenv("MENDLY_DB", "")
	got, err = resolveDBPath(newTestCmd(t, ""))
	require.NoError(t, err)
	assert.Equal(t, cfgPath, got)

	cfg = config.Config{}
	got, err = resolveDBPath(newTestCmd(t, ""))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "xdg", "mendly", "mendly.db"), got)
}

func TestAvgString(t *testing.T) {
	v := 6.25
	assert.Equal(t, "-", avgString(nil))
	assert.Equal(t, "6.2", avgString(&v))
}

func TestNewResponderScripted(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })

	cfg = config.Config{Companion: config.CompanionConfig{Mode: config.CompanionScripted}}
	r, err := newResponder(t.Context(), nil)
	require.NoError(t, err)
	assert.NotNil(t, r)
}

func TestNewResponderLLMModeNeedsProvider(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })
	for _, k := range []string{"MENDLY_LLM_PROVIDER", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}

	cfg = config.Config{Companion: config.CompanionConfig{Mode: config.CompanionLLM}}
	_, err := newResponder(t.Context(), nil)
	assert.Error(t, err)

	cfg.Companion.Mode = config.CompanionAuto
	r, err := newResponder(t.Context(), nil)
	require.NoError(t, err)
	assert.NotNil(t, r, "auto mode falls back to scripted replies")
}
