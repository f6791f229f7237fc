// Package gitcfg writes the per-directory Git configuration that binds a
// codebase directory to one identity: a local .gitconfig with a URL rewrite
// and [user] section, and an includeIf stanza in the global ~/.gitconfig.
//
// Both writes are append-only so existing content is preserved byte for
// byte, and both are guarded on their section header so re-provisioning the
// same account does not duplicate blocks.
package gitcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gitid-sh/gitid/internal/errors"
	"github.com/gitid-sh/gitid/internal/logger"
)

// LocalConfigName is the file appended inside each codebase directory.
const LocalConfigName = ".gitconfig"

// LocalConfigPath returns the path of the per-directory config file.
func LocalConfigPath(codebaseDir string) string {
	return filepath.Join(codebaseDir, LocalConfigName)
}

// localGuard is the section header whose presence means the codebase
// directory is already wired for this account.
func localGuard(name string) string {
	return fmt.Sprintf("[url \"git@github.com-%s:\"]", name)
}

// LocalBlock renders the config block for a codebase directory: rewrite
// git@github.com: remotes to the account's host alias and set the identity.
func LocalBlock(name, email string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[url \"git@github.com-%s:\"]\n", name)
	b.WriteString("    insteadOf = git@github.com:\n")
	b.WriteString("[user]\n")
	fmt.Fprintf(&b, "    name = %s\n", name)
	fmt.Fprintf(&b, "    email = %s\n", email)
	return b.String()
}

// includeIfGuard is the stanza header for a codebase directory.
func includeIfGuard(codebaseDir string) string {
	return fmt.Sprintf("[includeIf \"gitdir/i:%s\"]", gitdirPattern(codebaseDir))
}

// gitdirPattern normalizes a directory for the gitdir/i condition.
// Git only matches the directory and everything below it when the
// pattern ends with a slash.
func gitdirPattern(codebaseDir string) string {
	if strings.HasSuffix(codebaseDir, "/") {
		return codebaseDir
	}
	return codebaseDir + "/"
}

// IncludeIfStanza renders the global stanza pointing Git at the
// per-directory config whenever it operates under codebaseDir.
func IncludeIfStanza(codebaseDir string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[includeIf \"gitdir/i:%s\"]\n", gitdirPattern(codebaseDir))
	fmt.Fprintf(&b, "    path = %s\n\n", LocalConfigPath(codebaseDir))
	return b.String()
}

// WriteLocal appends the identity block to <codebaseDir>/.gitconfig,
// creating the directory if needed. Returns false when the guard matched
// and nothing was written.
func WriteLocal(codebaseDir, name, email string, log logger.Logger) (bool, error) {
	if log == nil {
		log = logger.Default()
	}

	if err := os.MkdirAll(codebaseDir, 0755); err != nil {
		return false, errors.Wrap(err, errors.ErrGitConfig,
			fmt.Sprintf("Failed to create codebase directory: %s", codebaseDir),
			"Check permissions on the parent directory")
	}

	path := LocalConfigPath(codebaseDir)
	appended, err := appendIfMissing(path, localGuard(name), LocalBlock(name, email))
	if err != nil {
		return false, errors.Wrap(err, errors.ErrGitConfig,
			fmt.Sprintf("Failed to write local git config: %s", path),
			"Check file permissions")
	}

	if appended {
		log.Info("wrote identity block to %s", path)
	} else {
		log.Debug("identity block already present in %s", path)
	}
	return appended, nil
}

// WriteGlobal appends the includeIf stanza for codebaseDir to
// <home>/.gitconfig. Returns false when the guard matched.
func WriteGlobal(home, codebaseDir string, log logger.Logger) (bool, error) {
	if log == nil {
		log = logger.Default()
	}

	path := filepath.Join(home, ".gitconfig")
	appended, err := appendIfMissing(path, includeIfGuard(codebaseDir), IncludeIfStanza(codebaseDir))
	if err != nil {
		return false, errors.Wrap(err, errors.ErrGitConfig,
			fmt.Sprintf("Failed to write global git config: %s", path),
			"Check file permissions")
	}

	if appended {
		log.Info("added includeIf stanza for %s to %s", codebaseDir, path)
	} else {
		log.Debug("includeIf stanza for %s already present", codebaseDir)
	}
	return appended, nil
}

// HasInclude reports whether <home>/.gitconfig already carries the
// includeIf stanza for codebaseDir.
func HasInclude(home, codebaseDir string) bool {
	data, err := os.ReadFile(filepath.Join(home, ".gitconfig"))
	if err != nil {
		return false
	}
	return strings.Contains(string(data), includeIfGuard(codebaseDir))
}

// HasLocal reports whether codebaseDir's .gitconfig already carries the
// identity block for name.
func HasLocal(codebaseDir, name string) bool {
	data, err := os.ReadFile(LocalConfigPath(codebaseDir))
	if err != nil {
		return false
	}
	return strings.Contains(string(data), localGuard(name))
}

// appendIfMissing appends block to the file at path unless guard already
// occurs in it (case-sensitive substring check). The file is created when
// absent. Existing bytes are never rewritten.
func appendIfMissing(path, guard, block string) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	if strings.Contains(string(existing), guard) {
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := f.WriteString(block); err != nil {
		return false, err
	}
	return true, nil
}
