package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCreateCmd_Exists verifies getCreateCmd returns
// a valid command.
func TestGetCreateCmd_Exists(t *testing.T) {
	cmd := getCreateCmd()
	require.NotNil(t, cmd, "Create command should exist")
	assert.Equal(t, "create", cmd.Use)
	assert.Contains(t, cmd.Short, "schema")
	assert.Contains(t, cmd.Long, "GORM AutoMigrate")
	assert.NotNil(t, cmd.RunE)
}

// TestGetCreateCmd_ForceFlag verifies --force flag exists.
func TestGetCreateCmd_ForceFlag(t *testing.T) {
	cmd := getCreateCmd()

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag,
		"--force flag should exist")

	assert.Equal(t, "f", forceFlag.Shorthand)
	assert.Equal(t, "false", forceFlag.DefValue)
	assert.Contains(t, forceFlag.Usage, "drop")
}

// TestGetCreateCmd_HelpText verifies help text content.
func TestGetCreateCmd_HelpText(t *testing.T) {
	cmd := getCreateCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "srameta create --force")
	assert.Contains(t, helpText, "Examples:")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   bool
	}{
		{"yes", "yes\n", true},
		{"short yes", "y\n", true},
		{"upper case", "YES\n", true},
		{"no newline", "y", true},
		{"no", "no\n", false},
		{"empty", "\n", false},
		{"eof", "", false},
	}

	for _, v := range tests {
		res := confirm(strings.NewReader(v.input))
		assert.Equal(t, v.res, res, v.msg)
	}
}
