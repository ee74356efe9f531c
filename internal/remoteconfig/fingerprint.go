package remoteconfig

import (
	"encoding/binary"
	"encoding/hex"
	"slices"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex encoded BLAKE2b-256 digest of entries that does
// not depend on map iteration order.
func Fingerprint(entries map[string]string) string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	h, _ := blake2b.New256(nil)
	var size [8]byte
	for _, k := range keys {
		for _, part := range []string{k, entries[k]} {
			binary.BigEndian.PutUint64(size[:], uint64(len(part)))
			h.Write(size[:])
			h.Write([]byte(part))
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
