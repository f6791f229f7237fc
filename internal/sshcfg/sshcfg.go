// Package sshcfg manages the Host blocks gitid appends to ~/.ssh/config.
// Each provisioned account gets an alias (github.com-<name>) that pins the
// connection to github.com with the account's IdentityFile.
package sshcfg

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gitid-sh/gitid/internal/errors"
	"github.com/gitid-sh/gitid/internal/logger"
	"github.com/kevinburke/ssh_config"
)

// ConfigPath returns the SSH client config path under home.
func ConfigPath(home string) string {
	return filepath.Join(home, ".ssh", "config")
}

// HostBlock renders the client config block for a host alias.
func HostBlock(host, keyPath string) string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "Host %s\n", host)
	b.WriteString("    HostName github.com\n")
	b.WriteString("    User git\n")
	b.WriteString("    AddKeysToAgent yes\n")
	b.WriteString("    UseKeychain yes\n")
	fmt.Fprintf(&b, "    IdentityFile %s\n", keyPath)
	return b.String()
}

// WriteHost appends the Host block for host to <home>/.ssh/config unless a
// "Host <host>" line is already present (case-sensitive substring check).
// Returns false when the guard matched and nothing was written.
func WriteHost(home, host, keyPath string, log logger.Logger) (bool, error) {
	if log == nil {
		log = logger.Default()
	}

	path := ConfigPath(home)

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, errors.Wrap(err, errors.ErrSSHConfig,
			fmt.Sprintf("Failed to read SSH config: %s", path),
			"Check file permissions")
	}

	if strings.Contains(string(existing), "Host "+host) {
		log.Debug("host block %q already present in %s", host, path)
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return false, errors.Wrap(err, errors.ErrSSHConfig,
			fmt.Sprintf("Failed to create SSH directory: %s", filepath.Dir(path)),
			"Check permissions on the home directory")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrSSHConfig,
			fmt.Sprintf("Failed to open SSH config: %s", path),
			"Check file permissions")
	}
	defer f.Close()

	if _, err := f.WriteString(HostBlock(host, keyPath)); err != nil {
		return false, errors.Wrap(err, errors.ErrSSHConfig,
			fmt.Sprintf("Failed to append to SSH config: %s", path),
			"Check disk space and permissions")
	}

	log.Info("added Host %s block to %s", host, path)
	return true, nil
}

// HasHost reports whether a "Host <host>" line exists in the config file.
// Uses the same substring check as the WriteHost guard.
func HasHost(path, host string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(content), "Host "+host)
}

// HostEntry represents a parsed host entry from SSH config.
type HostEntry struct {
	Alias        string // The Host pattern (alias)
	Hostname     string // The HostName value (actual host to connect to)
	User         string // The User value
	IdentityFile string // The IdentityFile value
}

// Lookup parses the config file and resolves the entry for alias.
// Returns nil when the file doesn't exist or no concrete pattern matches.
func Lookup(path, alias string) (*HostEntry, error) {
	entries, err := Parse(path)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.Alias == alias {
			return &e, nil
		}
	}
	return nil, nil
}

// Parse reads the SSH config file and returns all concrete host entries,
// skipping wildcard patterns.
func Parse(path string) ([]HostEntry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No SSH config is fine
		}
		return nil, errors.Wrap(err, errors.ErrSSHConfig,
			fmt.Sprintf("Failed to read SSH config: %s", path),
			"Check file permissions")
	}

	cfg, err := ssh_config.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSSHConfig,
			fmt.Sprintf("SSH config is not parseable: %s", path),
			"Check the file for syntax errors")
	}

	var entries []HostEntry
	seen := make(map[string]bool)

	for _, host := range cfg.Hosts {
		for _, pattern := range host.Patterns {
			alias := pattern.String()

			// Skip wildcards and special patterns
			if strings.Contains(alias, "*") || strings.Contains(alias, "?") {
				continue
			}
			if seen[alias] {
				continue
			}
			seen[alias] = true

			entry := HostEntry{Alias: alias}
			if hostname, _ := cfg.Get(alias, "HostName"); hostname != "" {
				entry.Hostname = hostname
			}
			if user, _ := cfg.Get(alias, "User"); user != "" {
				entry.User = user
			}
			if identity, _ := cfg.Get(alias, "IdentityFile"); identity != "" {
				entry.IdentityFile = identity
			}

			entries = append(entries, entry)
		}
	}

	return entries, nil
}
