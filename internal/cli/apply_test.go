package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gitid-sh/gitid/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig points the --config flag at an ad-hoc config file.
func withConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".gitid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	orig := configFlag
	configFlag = path
	t.Cleanup(func() { configFlag = orig })
}

func TestApplyCommand_UnknownAccount(t *testing.T) {
	withConfig(t, `version: 1
accounts:
  work:
    email: me@corp.example
    dir: ~/Code/work
`)

	err := applyCommand("nope", false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrAccount))
}

func TestApplyCommand_NoAccounts(t *testing.T) {
	withConfig(t, "version: 1\n")

	err := applyCommand("", false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "No accounts configured")
}

func TestApplyCommand_InvalidConfig(t *testing.T) {
	withConfig(t, `version: 1
accounts:
  work:
    email: not-an-email
    dir: ~/Code/work
`)

	err := applyCommand("", false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestPluralSuffix(t *testing.T) {
	assert.Equal(t, "", pluralSuffix(1))
	assert.Equal(t, "s", pluralSuffix(0))
	assert.Equal(t, "s", pluralSuffix(2))
}
