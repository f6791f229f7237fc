// Package sshkey shells out to the OpenSSH tooling: ssh-keygen for key
// generation and ssh-add for agent registration. Keys are written under
// the caller's .ssh directory with one keypair per provisioned account.
package sshkey

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gitid-sh/gitid/internal/errors"
	"github.com/gitid-sh/gitid/internal/logger"
)

// KeyPath returns the deterministic private key path for an account name:
// <sshDir>/id_ed25519_<name>.
func KeyPath(sshDir, name string) string {
	return filepath.Join(sshDir, "id_ed25519_"+name)
}

// GenerateOptions controls key generation.
type GenerateOptions struct {
	// Force removes an existing keypair before generating.
	// Without it, an existing private key is an error.
	Force bool

	Log logger.Logger
}

// Generate creates an Ed25519 keypair with no passphrase at path, with the
// email as the key comment. Returns the private key path.
//
// ssh-keygen prompts on overwrite, so an existing key is either an error or,
// with Force, removed (both halves) before the subprocess runs.
func Generate(path, email string, opts GenerateOptions) (string, error) {
	log := opts.Log
	if log == nil {
		log = logger.Default()
	}

	sshDir := filepath.Dir(path)
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return "", errors.Wrap(err, errors.ErrKeygen,
			fmt.Sprintf("Failed to create SSH directory: %s", sshDir),
			"Check permissions on the home directory")
	}

	if _, err := os.Stat(path); err == nil {
		if !opts.Force {
			return "", errors.New(errors.ErrKeygen,
				fmt.Sprintf("There's already a key at %s", path),
				"Re-run with --force to replace it, or remove the key manually")
		}
		log.Warn("replacing existing keypair at %s", path)
		for _, p := range []string{path, path + ".pub"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return "", errors.Wrap(err, errors.ErrKeygen,
					fmt.Sprintf("Failed to remove existing key: %s", p),
					"Check file permissions")
			}
		}
	}

	args := []string{
		"-t", "ed25519",
		"-C", email,
		"-f", path,
		"-N", "", // No passphrase
	}

	log.Debug("running ssh-keygen %s", strings.Join(args, " "))
	cmd := exec.Command("ssh-keygen", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrKeygen,
			fmt.Sprintf("Failed to generate SSH key: %s", strings.TrimSpace(string(output))),
			"Ensure ssh-keygen is installed and accessible")
	}

	// Verify the key was created
	if _, err := os.Stat(path); err != nil {
		return "", errors.New(errors.ErrKeygen,
			"Key generation completed but key file not found",
			"Check disk space and permissions")
	}

	log.Info("generated keypair at %s", path)
	return path, nil
}

// ReadPublicKey reads the contents of a public key file.
func ReadPublicKey(pubPath string) (string, error) {
	data, err := os.ReadFile(pubPath)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrKeygen,
			fmt.Sprintf("Failed to read public key: %s", pubPath),
			"Check that the file exists and is readable")
	}
	return strings.TrimSpace(string(data)), nil
}
