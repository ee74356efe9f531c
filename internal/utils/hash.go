package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before Hash is used.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers keyed with
// hashKey. Document uploads are signed with hashers from this pool.
//
// Example usage:
//
//	utils.InitHasherPool("my-secret-key")
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 signature over data using a hasher pulled
// from the global pool.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()
	h.Write(data)
	sum := h.Sum(nil)
	h.Reset()
	hasherPool.Put(h)
	return sum
}

// HashHex is Hash with a hex encoded result.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// HashString computes a hex encoded HMAC-SHA256 signature over data with
// hashKey. Unlike Hash it does not use the pool.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
