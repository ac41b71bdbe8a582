package server

import (
	"bytes"
	"os"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/muxdeck/internal/logging"
)

// authorize accepts keys listed in the authorized_keys file
func (s *Server) authorize(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := gossh.FingerprintSHA256(key)
	user := ctx.User()

	if !isKeyAuthorized(key, s.authorizedKeysPath) {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", user,
			"fingerprint", fingerprint,
			"key_type", key.Type())
		return false
	}

	logging.Logger.Info("SSH key authenticated",
		"user", user,
		"fingerprint", fingerprint,
		"key_type", key.Type())
	return true
}

// isKeyAuthorized reports whether clientKey appears in the authorized_keys
// file. Lines that do not parse are skipped.
func isKeyAuthorized(clientKey ssh.PublicKey, authorizedKeysPath string) bool {
	data, err := os.ReadFile(authorizedKeysPath)
	if err != nil {
		logging.Logger.Warn("Failed to read authorized_keys", "error", err, "path", authorizedKeysPath)
		return false
	}

	want := clientKey.Marshal()
	for len(data) > 0 {
		authorized, _, _, rest, err := gossh.ParseAuthorizedKey(data)
		if err != nil {
			// No further keys in the remaining input
			return false
		}
		if bytes.Equal(want, authorized.Marshal()) {
			return true
		}
		data = rest
	}
	return false
}
