package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomID returns a random 16-byte id as 32 hex characters.
func GenerateRandomID() (string, error) {
	bytes := make([]byte, 16)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
