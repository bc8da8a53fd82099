package uid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateTokenID returns a random ID for the jti claim of client tokens.
func GenerateTokenID() (string, error) {
	return randomHex(16)
}

// GenerateConnectionID tags a websocket connection in the logs.
func GenerateConnectionID() string {
	id, err := randomHex(8)
	if err != nil {
		return "conn-unknown"
	}
	return id
}

func randomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random ID: %v", err)
	}
	return hex.EncodeToString(bytes), nil
}
