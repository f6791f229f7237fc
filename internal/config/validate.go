package config

import (
	"fmt"
	"strings"

	"github.com/gitid-sh/gitid/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but gitid only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest gitid release")
	}

	for name, acct := range cfg.Accounts {
		if err := ValidateAccount(name, acct); err != nil {
			return err
		}
	}

	return nil
}

// ValidateAccount checks a single account declaration.
// The name lands in filenames (id_ed25519_<name>) and host aliases,
// so it must be a plain token.
func ValidateAccount(name string, acct Account) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrConfig,
			"Account name cannot be empty",
			"Give each entry under accounts: a non-empty key")
	}
	if strings.ContainsAny(name, " \t\n/\\") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Account name %q contains whitespace or path separators", name),
			"Use a plain token like 'work' or 'oss'")
	}

	if acct.Email == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Account %q has no email", name),
			"Set accounts."+name+".email")
	}
	if !strings.Contains(acct.Email, "@") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Account %q email %q doesn't look like an email address", name, acct.Email),
			"Use the address you commit with")
	}

	if acct.Dir == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Account %q has no codebase directory", name),
			"Set accounts."+name+".dir to the directory this identity governs")
	}

	if host := acct.HostAlias(name); strings.ContainsAny(host, " \t\n") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Account %q host alias %q contains whitespace", name, host),
			"Host aliases become 'Host <alias>' lines in ~/.ssh/config")
	}

	return nil
}
