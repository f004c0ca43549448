package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRootCmd verifies getRootCmd returns a valid command
// with all subcommands.
func TestGetRootCmd(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "otudb", cmd.Use)
	assert.NotNil(t, cmd.PersistentPreRunE, "bootstrap should be set")
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("db"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("driver"))

	tests := []struct {
		name  string
		alias string
	}{
		{"make-tables", "make_tables"},
		{"extract-seqs", "extract_seqs"},
		{"stats", "stats"},
	}
	for _, v := range tests {
		sub, _, err := cmd.Find([]string{v.name})
		require.NoError(t, err, v.name)
		assert.Equal(t, v.name, sub.Name())

		sub, _, err = cmd.Find([]string{v.alias})
		require.NoError(t, err, v.alias)
		assert.Equal(t, v.name, sub.Name())
	}
}

// TestGetRootCmd_Version verifies version output with long
// and short flags.
func TestGetRootCmd_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		cmd := getRootCmd()
		cmd.Version = "version: v1.2.3\nbuild:   abc123"

		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{flag})

		err := cmd.Execute()
		require.NoError(t, err, flag)

		output := buf.String()
		assert.Contains(t, output, "v1.2.3", flag)
		assert.Contains(t, output, "abc123", flag)
		assert.NotContains(t, output, "otudb version", flag)
	}
}

// TestGetRootCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetRootCmd_IndependentInstances(t *testing.T) {
	cmd1 := getRootCmd()
	cmd2 := getRootCmd()
	assert.NotSame(t, cmd1, cmd2)
}

func TestEnvName(t *testing.T) {
	tests := []struct {
		key, res string
	}{
		{"database.path", "OTUDB_DATABASE_PATH"},
		{"database.ssl_mode", "OTUDB_DATABASE_SSL_MODE"},
		{"load.atomic", "OTUDB_LOAD_ATOMIC"},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, envName(v.key))
	}
}

// TestExecute_InvalidCommand verifies error and usage on
// invalid command.
func TestExecute_InvalidCommand(t *testing.T) {
	cmd := getRootCmd()
	cmd.SetArgs([]string{"nonexistent-command"})

	buf := new(bytes.Buffer)
	err := execute(cmd, buf)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "unknown command")
}
