package doctor

import (
	"fmt"
	"os/exec"
)

// HomeCheck verifies the home directory is resolvable. Every path the
// tool writes hangs off it, so nothing else is worth checking without it.
type HomeCheck struct {
	Home string
}

func (c *HomeCheck) Name() string     { return "home_dir" }
func (c *HomeCheck) Category() string { return "ENVIRONMENT" }

func (c *HomeCheck) Run() CheckResult {
	if c.Home == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Cannot determine home directory",
			Suggestion: "Set the HOME environment variable",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Home directory: %s", c.Home),
	}
}

func (c *HomeCheck) Fix() error { return nil }

// ToolCheck verifies an external command is on PATH.
type ToolCheck struct {
	Tool       string
	InstallTip string
}

func (c *ToolCheck) Name() string     { return "tool_" + c.Tool }
func (c *ToolCheck) Category() string { return "ENVIRONMENT" }

func (c *ToolCheck) Run() CheckResult {
	path, err := exec.LookPath(c.Tool)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s not found in PATH", c.Tool),
			Suggestion: c.InstallTip,
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s found: %s", c.Tool, path),
	}
}

func (c *ToolCheck) Fix() error { return nil } // System package installation is out of scope

// NewEnvChecks creates all environment checks.
func NewEnvChecks(home string) []Check {
	return []Check{
		&HomeCheck{Home: home},
		&ToolCheck{Tool: "ssh-keygen", InstallTip: "Install OpenSSH: brew install openssh (macOS) or apt install openssh-client (Linux)"},
		&ToolCheck{Tool: "ssh-add", InstallTip: "Install OpenSSH: brew install openssh (macOS) or apt install openssh-client (Linux)"},
		&ToolCheck{Tool: "git", InstallTip: "Install git: brew install git (macOS) or apt install git (Linux)"},
	}
}
