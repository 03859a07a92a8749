package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// ShortID returns a short random hex token, used to correlate log lines
// belonging to one request.
func ShortID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
