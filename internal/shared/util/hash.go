package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHash returns a stable hex identifier for rendered content.
func ContentHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// ETag formats the content hash as a strong HTTP entity tag.
func ETag(b []byte) string {
	return `"` + ContentHash(b)[:32] + `"`
}
