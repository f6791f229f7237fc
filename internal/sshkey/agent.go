package sshkey

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"strings"

	"github.com/gitid-sh/gitid/internal/errors"
)

// AddToAgent registers the private key at keyPath with the running SSH agent
// via ssh-add. The agent's diagnostic output is surfaced verbatim on failure.
func AddToAgent(keyPath string) error {
	cmd := exec.Command("ssh-add", keyPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrap(err, errors.ErrAgent,
			fmt.Sprintf("Failed to add SSH key to agent: %s", strings.TrimSpace(string(output))),
			"Start the agent first: eval $(ssh-agent)")
	}
	return nil
}

// AgentRunning reports whether an SSH agent is reachable through SSH_AUTH_SOCK.
func AgentRunning() bool {
	socket := os.Getenv("SSH_AUTH_SOCK")
	if socket == "" {
		return false
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return false
	}
	conn.Close() //nolint:errcheck // Best-effort close, error not actionable
	return true
}

// AgentKeyCount returns the number of keys the agent currently holds.
// Returns 0 with no error when the agent is running but empty.
func AgentKeyCount() (int, error) {
	cmd := exec.Command("ssh-add", "-l")
	output, err := cmd.Output()
	if err != nil {
		// Exit code 1 means no keys loaded
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return 0, nil
		}
		return 0, errors.Wrap(err, errors.ErrAgent,
			"Cannot query SSH agent",
			"Check the agent: ssh-add -l")
	}

	count := 0
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count, nil
}
