package account

import (
	"path/filepath"
	"strings"

	"github.com/gitid-sh/gitid/internal/errors"
	"github.com/gitid-sh/gitid/internal/gitcfg"
	"github.com/gitid-sh/gitid/internal/logger"
	"github.com/gitid-sh/gitid/internal/sshcfg"
	"github.com/gitid-sh/gitid/internal/sshkey"
)

// Provisioner performs the fixed provisioning sequence for one identity.
// Errors propagate strictly: the first failing step aborts the run and
// partial side effects stay on disk.
type Provisioner struct {
	home     string
	registry *Registry
	log      logger.Logger
}

// NewProvisioner creates a provisioner rooted at the given home directory.
// The registry is owned by the caller; no process-wide state is kept.
func NewProvisioner(home string, registry *Registry, log logger.Logger) (*Provisioner, error) {
	if home == "" {
		return nil, errors.New(errors.ErrEnv,
			"Home directory is empty",
			"Set the HOME environment variable")
	}
	if log == nil {
		log = logger.Default()
	}
	return &Provisioner{home: home, registry: registry, log: log}, nil
}

// Request describes one identity to provision.
type Request struct {
	Name  string
	Email string
	Dir   string // Codebase directory; relative paths resolve against home
	Host  string // SSH alias; empty means github.com-<name>
	Force bool   // Replace an existing keypair
}

// Result reports what Provision did.
type Result struct {
	Account     Account
	Fingerprint string // SHA256 fingerprint of the generated public key
	LocalWrote  bool   // false when the local gitconfig guard matched
	GlobalWrote bool   // false when the includeIf guard matched
	HostWrote   bool   // false when the Host block guard matched
}

// Provision runs the full sequence: generate keypair, register with the
// agent, record the account, wire the git configs, append the SSH host
// block. Steps run in this order and the first error aborts.
func (p *Provisioner) Provision(req Request) (*Result, error) {
	host := req.Host
	if host == "" {
		host = "github.com-" + req.Name
	}
	dir := ResolveDir(p.home, req.Dir)

	keyPath, err := sshkey.Generate(
		sshkey.KeyPath(filepath.Join(p.home, ".ssh"), req.Name),
		req.Email,
		sshkey.GenerateOptions{Force: req.Force, Log: p.log},
	)
	if err != nil {
		return nil, err
	}

	if err := sshkey.AddToAgent(keyPath); err != nil {
		return nil, err
	}

	p.registry.Add(Account{
		Name:        req.Name,
		Email:       req.Email,
		KeyPath:     keyPath,
		CodebaseDir: dir,
	})

	result := &Result{}

	if err := p.Associate(req.Name, result); err != nil {
		return nil, err
	}

	if err := p.SetupSSHConfig(req.Name, host, result); err != nil {
		return nil, err
	}

	acct, err := p.registry.Get(req.Name)
	if err != nil {
		return nil, err
	}
	result.Account = acct

	// Fingerprint is informational; a key that just generated cleanly
	// should always parse.
	if fp, err := sshkey.Fingerprint(keyPath + ".pub"); err == nil {
		result.Fingerprint = fp
	} else {
		p.log.Warn("cannot fingerprint %s.pub: %v", keyPath, err)
	}

	return result, nil
}

// Associate writes the local identity block into the account's codebase
// directory and the includeIf stanza into the global gitconfig.
func (p *Provisioner) Associate(name string, result *Result) error {
	acct, err := p.registry.Get(name)
	if err != nil {
		return err
	}

	wrote, err := gitcfg.WriteLocal(acct.CodebaseDir, acct.Name, acct.Email, p.log)
	if err != nil {
		return err
	}
	if result != nil {
		result.LocalWrote = wrote
	}

	wrote, err = gitcfg.WriteGlobal(p.home, acct.CodebaseDir, p.log)
	if err != nil {
		return err
	}
	if result != nil {
		result.GlobalWrote = wrote
	}

	return nil
}

// SetupSSHConfig appends the Host block for the account's key under the
// given alias, unless one is already present.
func (p *Provisioner) SetupSSHConfig(name, host string, result *Result) error {
	acct, err := p.registry.Get(name)
	if err != nil {
		return err
	}

	wrote, err := sshcfg.WriteHost(p.home, host, acct.KeyPath, p.log)
	if err != nil {
		return err
	}
	if result != nil {
		result.HostWrote = wrote
	}
	return nil
}

// ResolveDir expands ~ and resolves relative paths against home.
func ResolveDir(home, dir string) string {
	if strings.HasPrefix(dir, "~/") {
		return filepath.Join(home, dir[2:])
	}
	if dir == "~" {
		return home
	}
	if !filepath.IsAbs(dir) {
		return filepath.Join(home, dir)
	}
	return filepath.Clean(dir)
}
