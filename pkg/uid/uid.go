package uid

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// NewMatchID returns a UUID string for recorded match results.
func NewMatchID() string {
	return uuid.NewString()
}

// NewSessionID returns a random hex session identifier.
func NewSessionID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
