// Package account holds the per-run identity registry and the provisioner
// that wires one Git identity end to end: SSH keypair, agent registration,
// per-directory Git config, global includeIf stanza, and SSH host alias.
package account

import (
	"fmt"
	"os"
	"sort"

	"github.com/gitid-sh/gitid/internal/errors"
)

// Account is a named Git identity bound to one SSH key and one codebase
// directory. Never mutated after creation.
type Account struct {
	Name        string
	Email       string
	KeyPath     string
	CodebaseDir string
}

// Registry maps account names to accounts for the duration of one run.
// The files written to disk are the state of record; the registry itself
// is never persisted.
type Registry struct {
	accounts map[string]Account
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{accounts: make(map[string]Account)}
}

// Add inserts or overwrites the account. Last write wins on name collision.
func (r *Registry) Add(a Account) {
	r.accounts[a.Name] = a
}

// Get looks up an account by name.
func (r *Registry) Get(name string) (Account, error) {
	a, ok := r.accounts[name]
	if !ok {
		return Account{}, errors.New(errors.ErrAccount,
			fmt.Sprintf("Account %q not found", name),
			"Provision it first, or check the accounts section of .gitid.yaml")
	}
	return a, nil
}

// Names returns all registered account names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.accounts))
	for name := range r.accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int {
	return len(r.accounts)
}

// ResolveHome returns the current user's home directory, failing with an
// ENV error when it cannot be determined. Called before any subprocess runs.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrEnv,
			"Cannot determine home directory",
			"Set the HOME environment variable")
	}
	return home, nil
}
