package metacmd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vinyldb/internal/metacmd"
)

func TestIsMetaCommand(t *testing.T) {
	require.True(t, metacmd.IsMetaCommand(".help"))
	require.True(t, metacmd.IsMetaCommand("  .timer on"))
	require.False(t, metacmd.IsMetaCommand("SELECT 1"))
}

func TestParseHelp(t *testing.T) {
	cmd, err := metacmd.Parse(".help")
	require.NoError(t, err)
	require.Equal(t, metacmd.Help, cmd.Kind)
}

func TestParseASTOnOff(t *testing.T) {
	cmd, err := metacmd.Parse(".ast on")
	require.NoError(t, err)
	require.Equal(t, metacmd.ASTOn, cmd.Kind)

	cmd, err = metacmd.Parse(".ast off")
	require.NoError(t, err)
	require.Equal(t, metacmd.ASTOff, cmd.Kind)
}

func TestParseTimerOnOff(t *testing.T) {
	cmd, err := metacmd.Parse(".timer on")
	require.NoError(t, err)
	require.Equal(t, metacmd.TimerOn, cmd.Kind)
}

func TestParseUnknownCommandFails(t *testing.T) {
	_, err := metacmd.Parse(".bogus")
	require.Error(t, err)

	_, err = metacmd.Parse(".ast sideways")
	require.Error(t, err)

	_, err = metacmd.Parse(".help extra")
	require.Error(t, err)
}
