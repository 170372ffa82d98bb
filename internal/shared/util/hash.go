package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashBytes returns the hex sha256 of a payload. Used for response ETags.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
