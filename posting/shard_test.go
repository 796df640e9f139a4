package posting

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/blake2b"
)

func TestShardDeterministic(t *testing.T) {
	assert.Equal(t, Shard("wikipedia", 124), Shard("wikipedia", 124))
}

func TestShardMatchesReferenceHash(t *testing.T) {
	// Same computation as spec.md's literal scenario:
	// int(blake2b(b"wikipedia", digest_size=5).hexdigest(), 16) % 124
	h, err := blake2b.New(5, nil)
	require.NoError(t, err)
	_, _ = h.Write([]byte("wikipedia"))
	sum := h.Sum(nil)

	var want uint64
	for _, b := range sum {
		want = want<<8 | uint64(b)
	}
	want %= 124

	assert.Equal(t, int(want), Shard("wikipedia", 124))
	// sanity check the digest is 5 bytes (10 hex characters)
	assert.Len(t, hex.EncodeToString(sum), 10)
}

func TestShardDependsOnlyOnBytes(t *testing.T) {
	n := 124
	for _, term := range []string{"rust", "golang", "index", "search", "wikipedia"} {
		a := Shard(term, n)
		b := Shard(string([]byte(term)), n)
		assert.Equal(t, a, b)
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, n)
	}
}
