package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRulesCommand_List(t *testing.T) {
	cmd := NewRulesCommand()
	cmd.SetArgs([]string{"list"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	require.NoError(t, cmd.Execute())
}

func TestNewRulesCommand_Info(t *testing.T) {
	cmd := NewRulesCommand()
	cmd.SetArgs([]string{"info", "module-filename"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	require.NoError(t, cmd.Execute())
}

func TestNewRulesCommand_InfoUnknownRule(t *testing.T) {
	cmd := NewRulesCommand()
	cmd.SetArgs([]string{"info", "does-not-exist"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	require.Error(t, cmd.Execute())
}
