// hash.go — DJB2 string hash for bucket placement.
//
// The classic Bernstein hash (seed 5381, ×33 per byte) computed with 64-bit
// wraparound. Placement must stay byte-for-byte stable: the bucket layout of
// seeded tables is part of the observable dump format.
package strtable

// Hash maps key onto a bucket index in [0, buckets).
// Pure, deterministic, no failure modes. buckets must be positive.
//
//go:nosplit
//go:inline
func Hash(key string, buckets int) uint32 {
	h := uint64(5381)
	for i := 0; i < len(key); i++ {
		h = (h << 5) + h + uint64(key[i]) // h*33 + c, mod 2^64
	}
	return uint32(h % uint64(buckets))
}
