package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag holds the --config value shared by all commands.
var configFlag string

// rootCmd is the base command all subcommands hang off.
var rootCmd = &cobra.Command{
	Use:   "gitid",
	Short: "Provision Git identities with their own SSH keys",
	Long: `gitid sets up multiple Git identities on one machine.

For each identity it generates a dedicated Ed25519 SSH key, loads it into
the SSH agent, and wires the git and SSH config files so that repositories
under the identity's codebase directory commit and push as that identity.

Examples:
  gitid setup --name work --email me@corp.example --dir ~/Code/work
  gitid init
  gitid apply
  gitid ls
  gitid doctor`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Config returns the --config flag value.
func Config() string {
	return configFlag
}

// Execute runs the root command. Errors already carry their own
// formatting, so they print as-is.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to .gitid.yaml")
}
