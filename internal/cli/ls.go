package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gitid-sh/gitid/internal/account"
	"github.com/gitid-sh/gitid/internal/config"
	"github.com/gitid-sh/gitid/internal/gitcfg"
	"github.com/gitid-sh/gitid/internal/sshcfg"
	"github.com/gitid-sh/gitid/internal/sshkey"
	"github.com/gitid-sh/gitid/internal/ui"
)

// AccountState describes one account's provisioned state for ls output.
type AccountState struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Dir         string `json:"dir"`
	Host        string `json:"host"`
	KeyPath     string `json:"key_path"`
	Fingerprint string `json:"fingerprint,omitempty"`
	KeyOnDisk   bool   `json:"key_on_disk"`
	HostBlock   bool   `json:"host_block"`
	IncludeIf   bool   `json:"include_if"`
	LocalConfig bool   `json:"local_config"`
}

// lsCommand lists configured accounts and what has been provisioned.
func lsCommand(asJSON bool) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}

	home, err := account.ResolveHome()
	if err != nil {
		return err
	}

	states := collectStates(cfg, home)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(states)
	}

	if len(states) == 0 {
		fmt.Println("No accounts configured. Add one with: gitid init")
		return nil
	}

	columns := []ui.TableColumn{
		{Title: "NAME", Width: 12},
		{Title: "EMAIL", Width: 26},
		{Title: "DIR", Width: 28},
		{Title: "HOST", Width: 20},
		{Title: "KEY", Width: 14},
		{Title: "SSH", Width: 4},
		{Title: "GIT", Width: 4},
	}

	rows := make([][]string, 0, len(states))
	for _, s := range states {
		rows = append(rows, []string{
			s.Name,
			s.Email,
			s.Dir,
			s.Host,
			keyCell(s),
			markCell(s.HostBlock),
			markCell(s.IncludeIf && s.LocalConfig),
		})
	}

	fmt.Println(ui.RenderTable(columns, rows))
	return nil
}

// collectStates inspects the filesystem for each configured account.
func collectStates(cfg *config.Config, home string) []AccountState {
	names := make([]string, 0, len(cfg.Accounts))
	for n := range cfg.Accounts {
		names = append(names, n)
	}
	sort.Strings(names)

	states := make([]AccountState, 0, len(names))
	for _, n := range names {
		acct := cfg.Accounts[n]
		dir := account.ResolveDir(home, acct.Dir)
		keyPath := sshkey.KeyPath(filepath.Join(home, ".ssh"), n)

		s := AccountState{
			Name:        n,
			Email:       acct.Email,
			Dir:         acct.Dir,
			Host:        acct.HostAlias(n),
			KeyPath:     keyPath,
			HostBlock:   sshcfg.HasHost(sshcfg.ConfigPath(home), acct.HostAlias(n)),
			IncludeIf:   gitcfg.HasInclude(home, dir),
			LocalConfig: gitcfg.HasLocal(dir, n),
		}

		if _, err := os.Stat(keyPath); err == nil {
			s.KeyOnDisk = true
			if fp, err := sshkey.Fingerprint(keyPath + ".pub"); err == nil {
				s.Fingerprint = fp
			}
		}

		states = append(states, s)
	}
	return states
}

func keyCell(s AccountState) string {
	if !s.KeyOnDisk {
		return ui.Muted("missing")
	}
	if s.Fingerprint != "" {
		// "SHA256:" prefix plus the first few digest characters
		if len(s.Fingerprint) > 14 {
			return s.Fingerprint[:14]
		}
		return s.Fingerprint
	}
	return ui.SymbolSuccess
}

func markCell(ok bool) string {
	if ok {
		return ui.Success(ui.SymbolSuccess)
	}
	return ui.Muted(ui.SymbolPending)
}
