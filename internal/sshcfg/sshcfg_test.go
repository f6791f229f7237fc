package sshcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gitid-sh/gitid/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostBlock(t *testing.T) {
	block := HostBlock("github.com-acc1", "/home/u/.ssh/id_ed25519_acc1")

	assert.Contains(t, block, "Host github.com-acc1\n")
	assert.Contains(t, block, "HostName github.com")
	assert.Contains(t, block, "User git")
	assert.Contains(t, block, "AddKeysToAgent yes")
	assert.Contains(t, block, "UseKeychain yes")
	assert.Contains(t, block, "IdentityFile /home/u/.ssh/id_ed25519_acc1")
}

func TestWriteHost_FreshHome(t *testing.T) {
	home := t.TempDir()

	appended, err := WriteHost(home, "github.com-acc1", "/home/u/.ssh/id_ed25519_acc1", logger.Noop())
	require.NoError(t, err)
	assert.True(t, appended)

	data, err := os.ReadFile(ConfigPath(home))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Host github.com-acc1")

	// Private config file permissions
	info, err := os.Stat(ConfigPath(home))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteHost_IdempotentUnderGuard(t *testing.T) {
	home := t.TempDir()

	appended, err := WriteHost(home, "github.com-acc1", "/k", logger.Noop())
	require.NoError(t, err)
	assert.True(t, appended)

	first, err := os.ReadFile(ConfigPath(home))
	require.NoError(t, err)

	appended, err = WriteHost(home, "github.com-acc1", "/k", logger.Noop())
	require.NoError(t, err)
	assert.False(t, appended)

	second, err := os.ReadFile(ConfigPath(home))
	require.NoError(t, err)
	assert.Equal(t, first, second, "second call must leave the file byte-identical")
}

func TestWriteHost_GuardIsCaseSensitive(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".ssh"), 0700))
	require.NoError(t, os.WriteFile(ConfigPath(home), []byte("Host GITHUB.COM-ACC1\n"), 0600))

	appended, err := WriteHost(home, "github.com-acc1", "/k", logger.Noop())
	require.NoError(t, err)
	assert.True(t, appended, "differently-cased alias must not trip the guard")
}

func TestWriteHost_PreservesExistingContent(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".ssh"), 0700))

	prior := "Host personal\n    HostName example.org\n"
	require.NoError(t, os.WriteFile(ConfigPath(home), []byte(prior), 0600))

	_, err := WriteHost(home, "github.com-acc1", "/k", logger.Noop())
	require.NoError(t, err)

	data, err := os.ReadFile(ConfigPath(home))
	require.NoError(t, err)
	assert.Equal(t, prior, string(data[:len(prior)]), "prior bytes must be preserved")
	assert.Contains(t, string(data), "Host github.com-acc1")
}

func TestHasHost(t *testing.T) {
	home := t.TempDir()

	assert.False(t, HasHost(ConfigPath(home), "github.com-acc1"))

	_, err := WriteHost(home, "github.com-acc1", "/k", logger.Noop())
	require.NoError(t, err)

	assert.True(t, HasHost(ConfigPath(home), "github.com-acc1"))
	assert.False(t, HasHost(ConfigPath(home), "github.com-acc2"))
}

func TestLookup_ResolvesWrittenBlock(t *testing.T) {
	home := t.TempDir()

	_, err := WriteHost(home, "github.com-acc1", "/home/u/.ssh/id_ed25519_acc1", logger.Noop())
	require.NoError(t, err)

	entry, err := Lookup(ConfigPath(home), "github.com-acc1")
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, "github.com-acc1", entry.Alias)
	assert.Equal(t, "github.com", entry.Hostname)
	assert.Equal(t, "git", entry.User)
	assert.Equal(t, "/home/u/.ssh/id_ed25519_acc1", entry.IdentityFile)
}

func TestLookup_MissingFile(t *testing.T) {
	entry, err := Lookup(filepath.Join(t.TempDir(), "config"), "github.com-acc1")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestParse_SkipsWildcards(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".ssh"), 0700))

	content := "Host *\n    AddKeysToAgent yes\n\nHost github.com-acc1\n    HostName github.com\n"
	require.NoError(t, os.WriteFile(ConfigPath(home), []byte(content), 0600))

	entries, err := Parse(ConfigPath(home))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "github.com-acc1", entries[0].Alias)
}

func TestParse_MultipleAccounts(t *testing.T) {
	home := t.TempDir()

	_, err := WriteHost(home, "github.com-acc1", "/k1", logger.Noop())
	require.NoError(t, err)
	_, err = WriteHost(home, "github.com-acc2", "/k2", logger.Noop())
	require.NoError(t, err)

	entries, err := Parse(ConfigPath(home))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
