package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewRefreshToken returns a random opaque token, hex-encoded.
func NewRefreshToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 32
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
