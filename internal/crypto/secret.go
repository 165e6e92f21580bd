package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewSecret returns a random URL-safe secret derived from n bytes of
// cryptographically secure entropy. Used to mint an ephemeral signing key
// when no JWT secret is configured in development.
func NewSecret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
