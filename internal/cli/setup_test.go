package cli

import (
	"testing"

	"github.com/gitid-sh/gitid/internal/account"
	"github.com/gitid-sh/gitid/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupCommand_MissingFlags(t *testing.T) {
	err := setupCommand("", "", "", "", false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "--name")
}

func TestSetupCommand_InvalidEmail(t *testing.T) {
	err := setupCommand("work", "not-an-email", "~/Code/work", "", false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestSetupCommand_InvalidName(t *testing.T) {
	err := setupCommand("bad name", "me@corp.example", "~/Code/work", "", false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestHostAlias(t *testing.T) {
	assert.Equal(t, "github.com-work", hostAlias(account.Request{Name: "work"}))
	assert.Equal(t, "gh-corp", hostAlias(account.Request{Name: "work", Host: "gh-corp"}))
}
