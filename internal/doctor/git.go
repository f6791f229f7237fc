package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopasspw/gitconfig"
)

// GitConfigCheck verifies the global gitconfig parses as INI.
type GitConfigCheck struct {
	Home string
}

func (c *GitConfigCheck) Name() string     { return "global_gitconfig" }
func (c *GitConfigCheck) Category() string { return "GIT" }

func (c *GitConfigCheck) Run() CheckResult {
	path := filepath.Join(c.Home, ".gitconfig")
	if _, err := os.Stat(path); err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No ~/.gitconfig yet",
		}
	}

	if _, err := gitconfig.LoadConfig(path); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "~/.gitconfig does not parse",
			Suggestion: "Review the file for malformed sections",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "~/.gitconfig parses cleanly",
	}
}

func (c *GitConfigCheck) Fix() error { return nil }

// DuplicateIncludeCheck looks for repeated includeIf sections in the
// global gitconfig. Git tolerates them but a duplicate usually means a
// directory was wired twice with different contents.
type DuplicateIncludeCheck struct {
	Home string
}

func (c *DuplicateIncludeCheck) Name() string     { return "duplicate_includes" }
func (c *DuplicateIncludeCheck) Category() string { return "GIT" }

func (c *DuplicateIncludeCheck) Run() CheckResult {
	path := filepath.Join(c.Home, ".gitconfig")
	data, err := os.ReadFile(path)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No ~/.gitconfig yet",
		}
	}

	seen := make(map[string]int)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[includeIf ") {
			seen[line]++
		}
	}

	var dupes []string
	for header, count := range seen {
		if count > 1 {
			dupes = append(dupes, header)
		}
	}

	if len(dupes) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%d duplicated includeIf section%s in ~/.gitconfig", len(dupes), pluralize(len(dupes))),
			Suggestion: "Remove the extra copies by hand",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "No duplicated includeIf sections",
	}
}

func (c *DuplicateIncludeCheck) Fix() error { return nil }

// NewGitChecks creates all gitconfig checks.
func NewGitChecks(home string) []Check {
	return []Check{
		&GitConfigCheck{Home: home},
		&DuplicateIncludeCheck{Home: home},
	}
}
