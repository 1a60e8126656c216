// Package cache caches serialized reasoning results for the transport
// layer. The classification/verification core is pure and never consults
// this cache; only fully assembled results are stored, keyed by input hash.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a claim text
func Key(input string) string {
	hash := sha256.Sum256([]byte(input))
	return "sovereign:v1:" + hex.EncodeToString(hash[:])
}
