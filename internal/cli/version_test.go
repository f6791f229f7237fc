package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dev stays bare", "dev", "dev"},
		{"empty stays bare", "", ""},
		{"adds v prefix", "1.2.3", "v1.2.3"},
		{"keeps v prefix", "v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.input))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() {
		version, commit, date = origVersion, origCommit, origDate
	}()

	SetVersionInfo("1.2.3", "abc1234", "2026-01-01")
	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "abc1234", commit)
	assert.Equal(t, "2026-01-01", date)
	assert.Equal(t, "1.2.3", GetVersion())
}

// createTestVersionCmd creates a standalone version command for testing
func createTestVersionCmd(short *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use: "version",
		Run: func(cmd *cobra.Command, args []string) {
			if *short {
				cmd.Println(version)
				return
			}
			cmd.Printf("gitid %s\n", formatVersion(version))
			cmd.Printf("commit: %s\n", commit)
		},
	}
	cmd.Flags().BoolVar(short, "short", false, "Print only the version number")
	return cmd
}

func TestVersionOutput(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() {
		version, commit, date = origVersion, origCommit, origDate
	}()

	version = "1.2.3"
	commit = "abc1234"

	var short bool
	cmd := createTestVersionCmd(&short)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "gitid v1.2.3")
	assert.Contains(t, buf.String(), "commit: abc1234")
}

func TestVersionShortOutput(t *testing.T) {
	origVersion := version
	defer func() { version = origVersion }()
	version = "1.2.3"

	var short bool
	cmd := createTestVersionCmd(&short)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--short"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "1.2.3\n", buf.String())
}
