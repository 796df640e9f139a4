package store

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/cznic/kv"
)

// Checkpoint is an embedded ordered key-value store recording which
// (shard, block) files the builder has already durably written and
// uploaded. A retried shard task consults it before redoing work,
// making the builder's per-shard stage idempotent as required by
// SPEC_FULL.md §4.4's failure semantics.
//
// This is adapted from the teacher's KVPipline
// (pipeline/kvdb.go), which persisted indexed documents the same way;
// here the value recorded per key is just the completed block's byte
// length, used to detect a truncated or corrupt prior attempt.
type Checkpoint struct {
	db *kv.DB
}

// OpenCheckpoint opens (or creates) the checkpoint database at path.
func OpenCheckpoint(path string) (*Checkpoint, error) {
	if err := os.MkdirAll(parentDir(path), 0o700); err != nil {
		return nil, fmt.Errorf("store: checkpoint dir: %w", err)
	}
	db, err := openOrCreateKV(path)
	if err != nil {
		return nil, fmt.Errorf("store: open checkpoint %s: %w", path, err)
	}
	return &Checkpoint{db: db}, nil
}

func openOrCreateKV(path string) (*kv.DB, error) {
	db, err := kv.Open(path, &kv.Options{})
	if err != nil {
		db, err = kv.Create(path, &kv.Options{})
	}
	return db, err
}

// MarkComplete records that fileName (a shard block file) was
// successfully written and uploaded with the given byte size.
func (c *Checkpoint) MarkComplete(fileName string, size int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(size))
	if err := c.db.Set([]byte(fileName), buf[:]); err != nil {
		return fmt.Errorf("store: checkpoint set %s: %w", fileName, err)
	}
	return nil
}

// CompletedSize returns the recorded size for fileName and whether it
// was found at all; callers compare this against the size they are
// about to (re)write to decide whether the block can be skipped.
func (c *Checkpoint) CompletedSize(fileName string) (int64, bool, error) {
	v, err := c.db.Get(nil, []byte(fileName))
	if err != nil {
		return 0, false, fmt.Errorf("store: checkpoint get %s: %w", fileName, err)
	}
	if v == nil {
		return 0, false, nil
	}
	return int64(binary.BigEndian.Uint64(v)), true, nil
}

// Close closes the underlying database.
func (c *Checkpoint) Close() error {
	return c.db.Close()
}

func parentDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}
