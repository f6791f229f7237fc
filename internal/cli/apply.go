package cli

import (
	"fmt"
	"sort"

	"github.com/gitid-sh/gitid/internal/account"
	"github.com/gitid-sh/gitid/internal/config"
	"github.com/gitid-sh/gitid/internal/errors"
)

// applyCommand provisions every account in the config file, or just one
// when name is set.
func applyCommand(name string, force bool) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	names := make([]string, 0, len(cfg.Accounts))
	if name != "" {
		if _, ok := cfg.Accounts[name]; !ok {
			return errors.New(errors.ErrAccount,
				fmt.Sprintf("Account %q not found in config", name),
				"List configured accounts with: gitid ls")
		}
		names = append(names, name)
	} else {
		for n := range cfg.Accounts {
			names = append(names, n)
		}
		sort.Strings(names)
	}

	if len(names) == 0 {
		return errors.New(errors.ErrConfig,
			"No accounts configured",
			"Add one with: gitid init")
	}

	home, err := account.ResolveHome()
	if err != nil {
		return err
	}

	registry := account.NewRegistry()
	provisioner, err := account.NewProvisioner(home, registry, nil)
	if err != nil {
		return err
	}

	// Accounts run in name order; the first failure aborts the run and
	// earlier accounts keep their side effects.
	for _, n := range names {
		acct := cfg.Accounts[n]
		req := account.Request{
			Name:  n,
			Email: acct.Email,
			Dir:   acct.Dir,
			Host:  acct.HostAlias(n),
			Force: force,
		}
		if err := provisionOne(provisioner, req); err != nil {
			return err
		}
	}

	fmt.Printf("Provisioned %d account%s\n", len(names), pluralSuffix(len(names)))
	return nil
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
