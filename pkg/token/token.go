// Package token mints opaque session tokens. The token carries no claims;
// it is only meaningful through the server-side session store.
package token

import (
	"crypto/rand"
	"encoding/hex"
)

const keyBytes = 20

// New returns a 40-character hex token from a CSPRNG.
func New() (string, error) {
	b := make([]byte, keyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
