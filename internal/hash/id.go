// Package hash provides the xxHash64 helpers used to identify registry keys
// and fingerprint a registry's id assignment.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a single key.
func ID(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Fingerprint hashes an ordered key list.
//
// Each key is followed by a zero byte so that ["ab", "c"] and ["a", "bc"]
// hash differently. The position of a key is its id, so reordering changes
// the result.
func Fingerprint(keys []string) uint64 {
	d := xxhash.New()
	var sep = [1]byte{0}
	for _, k := range keys {
		_, _ = d.WriteString(k)
		_, _ = d.Write(sep[:])
	}

	return d.Sum64()
}
