package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gitid-sh/gitid/internal/sshcfg"
	"github.com/gitid-sh/gitid/internal/sshkey"
)

// AgentCheck verifies the SSH agent is reachable and reports how many
// keys it holds.
type AgentCheck struct{}

func (c *AgentCheck) Name() string     { return "ssh_agent" }
func (c *AgentCheck) Category() string { return "SSH" }

func (c *AgentCheck) Run() CheckResult {
	if !sshkey.AgentRunning() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "SSH agent not running",
			Suggestion: "Start it with: eval $(ssh-agent)",
		}
	}

	count, err := sshkey.AgentKeyCount()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Cannot query SSH agent",
			Suggestion: "Check the agent: ssh-add -l",
		}
	}

	if count == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "SSH agent running but no keys loaded",
			Suggestion: "Load a key with: ssh-add",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("SSH agent running with %d key%s loaded", count, pluralize(count)),
	}
}

func (c *AgentCheck) Fix() error {
	// ssh-add needs an interactive terminal, so not auto-fixable
	return nil
}

// KeyPermissionsCheck verifies private keys this tool generated are not
// group or world readable.
type KeyPermissionsCheck struct {
	Home string
}

func (c *KeyPermissionsCheck) Name() string     { return "key_permissions" }
func (c *KeyPermissionsCheck) Category() string { return "SSH" }

func (c *KeyPermissionsCheck) keyPaths() []string {
	matches, err := filepath.Glob(filepath.Join(c.Home, ".ssh", "id_ed25519_*"))
	if err != nil {
		return nil
	}
	var keys []string
	for _, m := range matches {
		if filepath.Ext(m) == ".pub" {
			continue
		}
		keys = append(keys, m)
	}
	return keys
}

func (c *KeyPermissionsCheck) Run() CheckResult {
	keys := c.keyPaths()
	if len(keys) == 0 {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No provisioned keys to check",
		}
	}

	var badPerms []string
	for _, keyPath := range keys {
		info, err := os.Stat(keyPath)
		if err != nil {
			continue
		}
		if info.Mode().Perm()&0077 != 0 {
			badPerms = append(badPerms, filepath.Base(keyPath))
		}
	}

	if len(badPerms) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Insecure permissions on: %v", badPerms),
			Suggestion: "Fix: chmod 600 ~/.ssh/<keyfile>",
			Fixable:    true,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Permissions OK on %d key%s", len(keys), pluralize(len(keys))),
	}
}

func (c *KeyPermissionsCheck) Fix() error {
	for _, keyPath := range c.keyPaths() {
		info, err := os.Stat(keyPath)
		if err != nil {
			continue
		}
		if info.Mode().Perm()&0077 != 0 {
			if err := os.Chmod(keyPath, 0600); err != nil {
				return fmt.Errorf("failed to fix permissions on %s: %w", keyPath, err)
			}
		}
	}
	return nil
}

// SSHConfigCheck verifies ~/.ssh/config parses and reports how many
// host aliases it defines.
type SSHConfigCheck struct {
	Home string
}

func (c *SSHConfigCheck) Name() string     { return "ssh_config" }
func (c *SSHConfigCheck) Category() string { return "SSH" }

func (c *SSHConfigCheck) Run() CheckResult {
	path := sshcfg.ConfigPath(c.Home)
	if _, err := os.Stat(path); err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No ~/.ssh/config yet",
		}
	}

	entries, err := sshcfg.Parse(path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "~/.ssh/config does not parse",
			Suggestion: "Review the file for malformed Host blocks",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("~/.ssh/config parses with %d host alias%s", len(entries), pluralizeEs(len(entries))),
	}
}

func (c *SSHConfigCheck) Fix() error { return nil }

func pluralizeEs(n int) string {
	if n == 1 {
		return ""
	}
	return "es"
}

// NewSSHChecks creates all SSH-related checks.
func NewSSHChecks(home string) []Check {
	return []Check{
		&AgentCheck{},
		&KeyPermissionsCheck{Home: home},
		&SSHConfigCheck{Home: home},
	}
}
