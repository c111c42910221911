// internal/utils/crypto.go
package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

func HashString(input string) string {
	hasher := sha256.New()
	hasher.Write([]byte(input))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CacheKey builds "<namespace>:<sha256 of parts>" so free-text search terms
// never reach the key space verbatim.
func CacheKey(namespace string, parts ...string) string {
	return namespace + ":" + HashString(strings.Join(parts, "\x1f"))
}
