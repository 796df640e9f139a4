package posting

import (
	"golang.org/x/crypto/blake2b"
)

// DefaultShardCount is the build-time shard count N. Changing it
// invalidates any on-disk layout built with a different value, since
// shard assignment is a pure function of N.
const DefaultShardCount = 124

// shardDigestSize is the number of blake2b digest bytes used to derive
// the shard assignment.
const shardDigestSize = 5

// Shard returns the deterministic shard index for term under a layout
// with n shards: blake2b(term, digest_size=5), read as a big-endian
// unsigned integer, mod n. Two independent builds over the same term
// and the same n always agree, since the hash depends only on term's
// UTF-8 bytes.
func Shard(term string, n int) int {
	h, err := blake2b.New(shardDigestSize, nil)
	if err != nil {
		// Only fails for an invalid digest size or key, both constant
		// here, so this can't happen outside of a broken build.
		panic("posting: blake2b init: " + err.Error())
	}
	_, _ = h.Write([]byte(term))
	sum := h.Sum(nil)

	var v uint64
	for _, b := range sum {
		v = v<<8 | uint64(b)
	}
	return int(v % uint64(n))
}
