package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/gitid-sh/gitid/internal/config"
	"github.com/gitid-sh/gitid/internal/errors"
	"github.com/gitid-sh/gitid/internal/ui"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Name           string // First account name
	Email          string // First account email
	Dir            string // First account codebase directory
	Host           string // First account SSH alias
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, require flags
}

// Init creates a new .gitid.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.Wrap(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	name, email, dir, host := opts.Name, opts.Email, opts.Dir, opts.Host

	if opts.NonInteractive {
		if name == "" || email == "" || dir == "" {
			return errors.New(errors.ErrConfig,
				"Account details are required without a terminal",
				"Provide --name, --email and --dir, or run interactively")
		}
	} else {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Account name").
					Description("Used in the key filename and the default host alias").
					Placeholder("work").
					Value(&name).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("account name is required")
						}
						if strings.ContainsAny(s, " \t\n/\\") {
							return fmt.Errorf("account name cannot contain whitespace or path separators")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Git email").
					Placeholder("me@corp.example").
					Value(&email).
					Validate(func(s string) error {
						if !strings.Contains(s, "@") {
							return fmt.Errorf("email must contain @")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Codebase directory").
					Description("Repositories under this directory use the identity").
					Placeholder("~/Code/work").
					Value(&dir).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("codebase directory is required")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("SSH host alias (optional)").
					Description("Leave empty for github.com-<name>").
					Placeholder("github.com-work").
					Value(&host),
			),
		)
		if err := form.Run(); err != nil {
			return errors.Wrap(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or pass --name, --email and --dir")
		}
	}

	acct := config.Account{Email: email, Dir: dir, Host: host}
	if err := config.ValidateAccount(name, acct); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	cfg.Accounts[name] = acct

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# gitid configuration
# Run 'gitid apply' to provision every account below
# Run 'gitid doctor' to check your environment

`
	if err := os.WriteFile(configPath, []byte(header+string(data)), 0644); err != nil {
		return errors.Wrap(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  gitid apply   - Provision the accounts")
	fmt.Println("  gitid ls      - Show provisioned state")
	fmt.Println("  gitid doctor  - Check your environment")

	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(name, email, dir, host string, force bool) error {
	return Init(InitOptions{
		Name:           name,
		Email:          email,
		Dir:            dir,
		Host:           host,
		Overwrite:      force,
		NonInteractive: !term.IsTerminal(int(os.Stdin.Fd())),
	})
}
