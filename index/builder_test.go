package index

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aosen/wikisearch/posting"
	"github.com/aosen/wikisearch/store"
)

func TestBuildTitleAndReadBack(t *testing.T) {
	dir := t.TempDir()
	docs := []Document{
		{ID: 1, Text: "rust programming language"},
		{ID: 2, Text: "go programming language"},
		{ID: 3, Text: "rust memory safety"},
	}

	desc, err := BuildTitle(docs, BuildOptions{ShardCount: 4, BaseDir: dir, RemoteFolder: "postings_title"})
	require.NoError(t, err)

	df, segs, ok := desc.Postings("rust")
	require.True(t, ok)
	assert.Equal(t, uint32(2), df)

	r := posting.NewMultiFileReader(dir)
	defer r.Close()
	records, err := r.ReadPostings(segs, df)
	require.NoError(t, err)
	require.Len(t, records, int(df))

	seen := make(map[uint32]bool)
	var prev uint32
	for i, rec := range records {
		assert.GreaterOrEqual(t, rec.TF, uint16(1))
		assert.False(t, seen[rec.DocID], "duplicate doc id in posting list")
		seen[rec.DocID] = true
		if i > 0 {
			assert.GreaterOrEqual(t, rec.DocID, prev, "postings must be doc_id-sorted ascending")
		}
		prev = rec.DocID
	}
}

func TestBuildBodyDropsLowDFTerms(t *testing.T) {
	dir := t.TempDir()

	var docs []Document
	// "rare" appears in exactly BodyDFThreshold documents: must be dropped.
	for i := uint32(0); i < BodyDFThreshold; i++ {
		docs = append(docs, Document{ID: i, Text: "rare term"})
	}
	// "common" appears in BodyDFThreshold+1 documents: must survive.
	for i := uint32(0); i < BodyDFThreshold+1; i++ {
		docs = append(docs, Document{ID: 10_000 + i, Text: fmt.Sprintf("common document %d", i)})
	}

	desc, err := BuildBody(docs, BuildOptions{ShardCount: 4, BaseDir: dir, RemoteFolder: "postings_body"})
	require.NoError(t, err)

	_, _, ok := desc.Postings("rare")
	assert.False(t, ok, "term with df <= threshold must not appear in the body descriptor")

	df, _, ok := desc.Postings("common")
	require.True(t, ok)
	assert.Equal(t, uint32(BodyDFThreshold+1), df)

	for term, d := range desc.DF {
		assert.Greater(t, d, uint32(BodyDFThreshold), "term %q violates the body df filter", term)
	}
}

func TestBuildAnchorAggregatesByTarget(t *testing.T) {
	dir := t.TempDir()
	occs := []AnchorOccurrence{
		{TargetID: 100, Text: "rust programming"},
		{TargetID: 100, Text: "rust language"},
		{TargetID: 200, Text: "golang tutorial"},
	}

	desc, err := BuildAnchor(occs, BuildOptions{ShardCount: 4, BaseDir: dir, RemoteFolder: "postings_anchor"})
	require.NoError(t, err)

	df, segs, ok := desc.Postings("rust")
	require.True(t, ok)
	assert.Equal(t, uint32(1), df, "both anchor texts point at the same target, so df=1")

	r := posting.NewMultiFileReader(dir)
	defer r.Close()
	records, err := r.ReadPostings(segs, df)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, uint32(100), records[0].DocID)
	assert.Equal(t, uint16(2), records[0].TF, "rust occurs twice across the target's inbound anchors")
}

func TestDescriptorSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	docs := []Document{{ID: 1, Text: "search engine"}, {ID: 2, Text: "search index"}}
	desc, err := BuildTitle(docs, BuildOptions{ShardCount: 2, BaseDir: dir, RemoteFolder: "postings_title"})
	require.NoError(t, err)

	b, err := desc.SaveBytes()
	require.NoError(t, err)

	got, err := LoadDescriptorBytes(b)
	require.NoError(t, err)
	assert.Equal(t, desc.DF, got.DF)
	assert.Equal(t, desc.PostingLocs, got.PostingLocs)
}

func TestLoadDescriptorRejectsBadVersion(t *testing.T) {
	bad := &Descriptor{Version: DescriptorVersion + 1, DF: map[string]uint32{}, PostingLocs: map[string][]posting.Segment{}}
	b, err := bad.SaveBytes()
	require.NoError(t, err)

	_, err = LoadDescriptorBytes(b)
	assert.Error(t, err)
}

func TestBuildSkipsCheckpointedShard(t *testing.T) {
	dir := t.TempDir()
	docs := []Document{
		{ID: 1, Text: "rust programming language"},
		{ID: 2, Text: "go programming language"},
	}

	checkpoint, err := store.OpenCheckpoint(filepath.Join(t.TempDir(), "checkpoint.kv"))
	require.NoError(t, err)
	defer checkpoint.Close()

	opts := BuildOptions{ShardCount: 4, BaseDir: dir, RemoteFolder: "postings_title", Checkpoint: checkpoint}

	first, err := BuildTitle(docs, opts)
	require.NoError(t, err)

	// Remove the first build's block files: a second build that skips
	// every shard's write pass never recreates them.
	bins, err := filepath.Glob(filepath.Join(dir, "*.bin"))
	require.NoError(t, err)
	require.NotEmpty(t, bins)
	for _, b := range bins {
		require.NoError(t, os.Remove(b))
	}

	// A second build over the same BaseDir and checkpoint must skip
	// every shard's write pass (all blocks already checkpointed) and
	// still reproduce the identical descriptor by reading back the
	// posting_locs files the first build left on disk.
	second, err := BuildTitle(docs, opts)
	require.NoError(t, err)

	assert.Equal(t, first.DF, second.DF)
	assert.Equal(t, first.PostingLocs, second.PostingLocs)

	rewritten, err := filepath.Glob(filepath.Join(dir, "*.bin"))
	require.NoError(t, err)
	assert.Empty(t, rewritten, "checkpointed shards must not be rewritten")
}

func TestShardDeterminismAcrossBuilds(t *testing.T) {
	dir1, dir2 := t.TempDir(), t.TempDir()
	docs := []Document{{ID: 1, Text: "wikipedia search engine ranking"}}

	d1, err := BuildTitle(docs, BuildOptions{ShardCount: 16, BaseDir: dir1, RemoteFolder: "postings_title"})
	require.NoError(t, err)
	d2, err := BuildTitle(docs, BuildOptions{ShardCount: 16, BaseDir: dir2, RemoteFolder: "postings_title"})
	require.NoError(t, err)

	assert.Equal(t, d1.DF, d2.DF)
	assert.Equal(t, d1.PostingLocs, d2.PostingLocs)
}
