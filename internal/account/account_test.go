package account

import (
	"testing"

	"github.com/gitid-sh/gitid/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddAndGet(t *testing.T) {
	r := NewRegistry()

	a := Account{
		Name:        "work",
		Email:       "me@corp.example",
		KeyPath:     "/home/u/.ssh/id_ed25519_work",
		CodebaseDir: "/home/u/Code/work",
	}
	r.Add(a)

	got, err := r.Get("work")
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("nope")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrAccount))
	assert.Contains(t, err.Error(), `"nope" not found`)
}

func TestRegistry_LastWriteWins(t *testing.T) {
	r := NewRegistry()

	r.Add(Account{Name: "work", Email: "old@example.com"})
	r.Add(Account{Name: "work", Email: "new@example.com"})

	got, err := r.Get("work")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Add(Account{Name: "zeta"})
	r.Add(Account{Name: "alpha"})
	r.Add(Account{Name: "mid"})

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}

func TestResolveHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveHome()
	require.NoError(t, err)
	assert.Equal(t, home, got)
}

func TestResolveHome_Missing(t *testing.T) {
	t.Setenv("HOME", "")

	_, err := ResolveHome()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEnv))
}

func TestNewProvisioner_EmptyHome(t *testing.T) {
	_, err := NewProvisioner("", NewRegistry(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEnv))
}
