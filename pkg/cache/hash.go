package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Key derives a namespaced cache key from arbitrary JSON-encodable parts:
//
//	cache.Key("svg", dot) // "svg:3a7bd3e2..."
//
// Parts that fail to encode contribute nothing to the digest.
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
