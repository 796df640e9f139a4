package index

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/aosen/wikisearch/posting"
)

// shardPostingLocs is the companion artifact a single shard's
// MultiFileWriter pass produces: the term -> segment-list map for just
// the terms routed to that shard. SPEC_FULL.md's merge step (§4.4 step
// 9) reads every shard's copy of this file back in and folds them into
// one global Descriptor.
type shardPostingLocs map[string][]posting.Segment

func saveShardPostingLocs(path string, locs shardPostingLocs) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(locs); err != nil {
		return fmt.Errorf("index: encode shard posting_locs: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("index: write shard posting_locs %s: %w", path, err)
	}
	return nil
}

func loadShardPostingLocs(path string) (shardPostingLocs, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("index: read shard posting_locs %s: %w", path, err)
	}
	var locs shardPostingLocs
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&locs); err != nil {
		return nil, fmt.Errorf("index: decode shard posting_locs %s: %w", path, err)
	}
	return locs, nil
}
