package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/gitid-sh/gitid/internal/account"
	"github.com/gitid-sh/gitid/internal/config"
	"github.com/gitid-sh/gitid/internal/errors"
	"github.com/gitid-sh/gitid/internal/ui"
)

// setupCommand provisions a single identity from flags.
func setupCommand(name, email, dir, host string, force bool) error {
	if name == "" || email == "" || dir == "" {
		return errors.New(errors.ErrConfig,
			"Missing required flags",
			"Usage: gitid setup --name <name> --email <email> --dir <dir>")
	}

	if err := config.ValidateAccount(name, config.Account{Email: email, Dir: dir, Host: host}); err != nil {
		return err
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

	return provisionOne(provisioner, account.Request{
		Name:  name,
		Email: email,
		Dir:   dir,
		Host:  host,
		Force: force,
	})
}

// provisionOne runs the full sequence for one identity and prints what
// happened. Shared by setup and apply.
func provisionOne(p *account.Provisioner, req account.Request) error {
	spinner := ui.NewSpinner(fmt.Sprintf("Provisioning '%s'", req.Name))
	spinner.Start()

	result, err := p.Provision(req)
	if err != nil {
		spinner.Fail()
		return err
	}
	spinner.Success()

	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	fmt.Printf("  %s Key %s", ui.SymbolSuccess, result.Account.KeyPath)
	if result.Fingerprint != "" {
		fmt.Printf(" %s", mutedStyle.Render("("+result.Fingerprint+")"))
	}
	fmt.Println()
	fmt.Printf("  %s Key loaded into ssh-agent\n", ui.SymbolSuccess)

	printWrite(result.LocalWrote, fmt.Sprintf("Identity block in %s/.gitconfig", result.Account.CodebaseDir))
	printWrite(result.GlobalWrote, "includeIf stanza in ~/.gitconfig")
	printWrite(result.HostWrote, fmt.Sprintf("Host block '%s' in ~/.ssh/config", hostAlias(req)))

	fmt.Println()
	return nil
}

// printWrite renders one config write, marking guard hits as skipped.
func printWrite(wrote bool, what string) {
	if wrote {
		fmt.Printf("  %s %s\n", ui.SymbolSuccess, what)
		return
	}
	fmt.Printf("  %s %s %s\n", ui.SymbolSkipped, what, ui.Muted("(already present)"))
}

func hostAlias(req account.Request) string {
	if req.Host != "" {
		return req.Host
	}
	return "github.com-" + req.Name
}
