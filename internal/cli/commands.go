package cli

import (
	"os"

	"github.com/gitid-sh/gitid/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	setupNameFlag  string
	setupEmailFlag string
	setupDirFlag   string
	setupHostFlag  string
	setupForce     bool
	applyAccount   string
	applyForce     bool
	initNameFlag   string
	initEmailFlag  string
	initDirFlag    string
	initHostFlag   string
	initForce      bool
	lsJSON         bool
	doctorJSON     bool
	doctorFix      bool
)

// setupCmd provisions a single identity from flags
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Provision one Git identity",
	Long: `Provision a single Git identity end to end.

Generates a dedicated Ed25519 key, registers it with the SSH agent, writes
the identity block into the codebase directory's .gitconfig, wires the
includeIf stanza into ~/.gitconfig, and appends a Host block to
~/.ssh/config.

Examples:
  gitid setup --name work --email me@corp.example --dir ~/Code/work
  gitid setup --name oss --email me@example.com --dir ~/Code/oss --host github.com-oss
  gitid setup --name work --email me@corp.example --dir ~/Code/work --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setupCommand(setupNameFlag, setupEmailFlag, setupDirFlag, setupHostFlag, setupForce)
	},
}

// applyCmd provisions every account declared in the config file
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Provision all accounts from .gitid.yaml",
	Long: `Provision every account declared in the configuration file.

Accounts run in name order. The first failure aborts the run; accounts
provisioned before it keep their side effects.

Examples:
  gitid apply
  gitid apply --account work
  gitid apply --config ~/dotfiles/.gitid.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyCommand(applyAccount, applyForce)
	},
}

// initCmd scaffolds a .gitid.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .gitid.yaml configuration",
	Long: `Initialize a new gitid configuration file.

Creates a .gitid.yaml in the current directory, prompting for the first
account interactively. Without a terminal, the account comes from flags.

Examples:
  gitid init
  gitid init --name work --email me@corp.example --dir ~/Code/work
  gitid init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initNameFlag, initEmailFlag, initDirFlag, initHostFlag, initForce)
	},
}

// lsCmd lists configured accounts and their provisioned state
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List accounts and their provisioned state",
	Long: `List every account in the configuration file along with what has
been provisioned for it: key on disk, SSH host block, includeIf stanza.

Examples:
  gitid ls
  gitid ls --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return lsCommand(lsJSON)
	},
}

// doctorCmd diagnoses environment and configuration issues
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose environment and config issues",
	Long: `Run diagnostic checks to identify and fix common issues.

Checks:
  - home directory and required tools (ssh-keygen, ssh-add, git)
  - SSH agent reachability and loaded keys
  - private key permissions
  - ~/.ssh/config and ~/.gitconfig health

Examples:
  gitid doctor
  gitid doctor --fix`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for gitid.

Examples:
  # Bash
  gitid completion bash > /etc/bash_completion.d/gitid

  # Zsh
  gitid completion zsh > "${fpath[1]}/_gitid"

  # Fish
  gitid completion fish > ~/.config/fish/completions/gitid.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// setup command flags
	setupCmd.Flags().StringVar(&setupNameFlag, "name", "", "account name (used in the key filename and host alias)")
	setupCmd.Flags().StringVar(&setupEmailFlag, "email", "", "git email for this identity")
	setupCmd.Flags().StringVar(&setupDirFlag, "dir", "", "codebase directory (relative paths resolve against home)")
	setupCmd.Flags().StringVar(&setupHostFlag, "host", "", "SSH host alias (default github.com-<name>)")
	setupCmd.Flags().BoolVarP(&setupForce, "force", "f", false, "replace an existing keypair")

	// apply command flags
	applyCmd.Flags().StringVar(&applyAccount, "account", "", "provision only this account")
	applyCmd.Flags().BoolVarP(&applyForce, "force", "f", false, "replace existing keypairs")

	// init command flags
	initCmd.Flags().StringVar(&initNameFlag, "name", "", "first account name")
	initCmd.Flags().StringVar(&initEmailFlag, "email", "", "first account email")
	initCmd.Flags().StringVar(&initDirFlag, "dir", "", "first account codebase directory")
	initCmd.Flags().StringVar(&initHostFlag, "host", "", "first account SSH host alias")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// ls command flags
	lsCmd.Flags().BoolVar(&lsJSON, "json", false, "output in JSON format")

	// doctor command flags
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")

	// Register all commands
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(completionCmd)
}
