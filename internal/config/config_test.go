package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vinyldb/internal/config"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, "vinyl.db", cfg.DataPath)
	require.False(t, cfg.ShowAST)
	require.False(t, cfg.Timer)
}

func TestParseFlagsOverrideDefaults(t *testing.T) {
	cfg, err := config.Parse([]string{"-data", "/tmp/other.db", "-ast", "-timer"})
	require.NoError(t, err)
	require.Equal(t, "/tmp/other.db", cfg.DataPath)
	require.True(t, cfg.ShowAST)
	require.True(t, cfg.Timer)
}

func TestParseEnvFallback(t *testing.T) {
	t.Setenv("VINYLDB_DATA", "/env/path.db")
	t.Setenv("VINYLDB_TIMER", "true")

	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, "/env/path.db", cfg.DataPath)
	require.True(t, cfg.Timer)
}

func TestParseFlagsOverrideEnv(t *testing.T) {
	t.Setenv("VINYLDB_DATA", "/env/path.db")

	cfg, err := config.Parse([]string{"-data", "/flag/path.db"})
	require.NoError(t, err)
	require.Equal(t, "/flag/path.db", cfg.DataPath)
}
