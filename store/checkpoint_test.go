package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointMarkAndQueryCompleted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.kv")
	cp, err := OpenCheckpoint(path)
	require.NoError(t, err)
	defer cp.Close()

	_, ok, err := cp.CompletedSize("0_0.bin")
	require.NoError(t, err)
	assert.False(t, ok, "unrecorded file must report not-found")

	require.NoError(t, cp.MarkComplete("0_0.bin", 1999998))

	size, ok, err := cp.CompletedSize("0_0.bin")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1999998), size)
}

func TestCheckpointReopenPersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.kv")
	cp, err := OpenCheckpoint(path)
	require.NoError(t, err)
	require.NoError(t, cp.MarkComplete("3_1.bin", 42))
	require.NoError(t, cp.Close())

	reopened, err := OpenCheckpoint(path)
	require.NoError(t, err)
	defer reopened.Close()

	size, ok, err := reopened.CompletedSize("3_1.bin")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(42), size)
}
