package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .gitid.yaml configuration file.
type Config struct {
	Version  int                `yaml:"version" mapstructure:"version"`
	Accounts map[string]Account `yaml:"accounts" mapstructure:"accounts"`
}

// Account declares one Git identity to provision.
// The map key in Config.Accounts is the account name; it ends up in the
// key filename (id_ed25519_<name>) and the default host alias.
type Account struct {
	// Email used for the key comment and the [user] section.
	Email string `yaml:"email" mapstructure:"email"`

	// Dir is the codebase directory the identity governs.
	// ~ is expanded; relative paths resolve against the home directory.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// Host is the SSH alias for the identity. Defaults to github.com-<name>.
	Host string `yaml:"host,omitempty" mapstructure:"host"`
}

// HostAlias returns the SSH alias for the account named name,
// falling back to the github.com-<name> convention.
func (a Account) HostAlias(name string) string {
	if a.Host != "" {
		return a.Host
	}
	return "github.com-" + name
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		Accounts: make(map[string]Account),
	}
}
