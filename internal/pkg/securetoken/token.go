// Package securetoken generates opaque session tokens.
package securetoken

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the raw entropy per token. 32 bytes is double the 128-bit
// guessing-resistance floor.
const tokenBytes = 32

// New returns a hex-encoded token drawn from crypto/rand.
func New() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("securetoken: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
