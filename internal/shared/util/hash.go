package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns a short stable identifier for submitted text, suitable for
// correlating log lines without logging the text itself.
func Digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}
