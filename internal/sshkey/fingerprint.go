package sshkey

import (
	"fmt"

	"github.com/gitid-sh/gitid/internal/errors"
	"golang.org/x/crypto/ssh"
)

// Fingerprint returns the SHA256 fingerprint of the public key file at
// pubPath, in the same format ssh-add -l prints.
func Fingerprint(pubPath string) (string, error) {
	raw, err := ReadPublicKey(pubPath)
	if err != nil {
		return "", err
	}

	key, _, _, _, err := ssh.ParseAuthorizedKey([]byte(raw))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrKeygen,
			fmt.Sprintf("Public key at %s is not parseable", pubPath),
			"The file may be corrupt; regenerate the key with --force")
	}

	return ssh.FingerprintSHA256(key), nil
}
