package index

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/aosen/wikisearch/posting"
	"github.com/aosen/wikisearch/store"
	"github.com/aosen/wikisearch/token"
	"go.uber.org/zap"
)

// Document is one field's text for a single corpus document, the
// builder's input unit for the body and title fields.
type Document struct {
	ID   uint32
	Text string
}

// AnchorOccurrence is one inbound anchor-text occurrence: the text of
// a link and the document it points to. The anchor field's postings
// are keyed by TargetID, not by the document the anchor text lives in
// (SPEC_FULL.md §9's resolution of the anchor record-shape ambiguity).
type AnchorOccurrence struct {
	TargetID uint32
	Text     string
}

// BodyDFThreshold is the document-frequency cutoff applied to the body
// field only: terms appearing in BodyDFThreshold or fewer documents are
// dropped to curb the inverted index's long tail.
const BodyDFThreshold = 50

// BuildOptions configures a single field's build pass.
type BuildOptions struct {
	// ShardCount is the number of term buckets; defaults to
	// posting.DefaultShardCount when zero.
	ShardCount int
	// BaseDir is the local scratch directory block files are written
	// to before upload.
	BaseDir string
	// RemoteFolder is the field's folder name under the object store
	// root, e.g. "postings_body".
	RemoteFolder string
	// Store uploads closed block files and each shard's posting_locs
	// file; nil means local-disk-only (useful for tests). The merged
	// descriptor is not uploaded by the build itself.
	Store store.ObjectStore
	// Checkpoint records completed blocks for idempotent shard
	// retries; nil disables checkpointing.
	Checkpoint *store.Checkpoint
	// Logger receives structured progress events; nil uses a no-op
	// logger.
	Logger *zap.Logger
	// FilterBodyDF, when true, drops terms whose document frequency is
	// BodyDFThreshold or lower. Set for the body field only.
	FilterBodyDF bool
}

func (o *BuildOptions) shardCount() int {
	if o.ShardCount > 0 {
		return o.ShardCount
	}
	return posting.DefaultShardCount
}

func (o *BuildOptions) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// uploaderAdapter lets a store.ObjectStore satisfy posting.Uploader.
type uploaderAdapter struct{ s store.ObjectStore }

func (u uploaderAdapter) Upload(localPath, remotePath string) error {
	if u.s == nil {
		return nil
	}
	return u.s.Upload(localPath, remotePath)
}

// BuildBody builds the body field's index over docs, applying the
// document-frequency filter of SPEC_FULL.md §4.4 step 5.
func BuildBody(docs []Document, opts BuildOptions) (*Descriptor, error) {
	opts.FilterBodyDF = true
	counts := countsFromDocuments(docs)
	return build(counts, opts)
}

// BuildTitle builds the title field's index over docs. No df filter is
// applied.
func BuildTitle(docs []Document, opts BuildOptions) (*Descriptor, error) {
	opts.FilterBodyDF = false
	counts := countsFromDocuments(docs)
	return build(counts, opts)
}

// BuildAnchor builds the anchor field's index: tf for a term under a
// target document is the number of times the term occurs across every
// inbound anchor text pointing at that target (SPEC_FULL.md §4.4's
// anchor specialization).
func BuildAnchor(occs []AnchorOccurrence, opts BuildOptions) (*Descriptor, error) {
	opts.FilterBodyDF = false
	counts := make(map[uint32]map[string]uint32)
	for _, occ := range occs {
		terms, freq := token.Count(occ.Text)
		tc, ok := counts[occ.TargetID]
		if !ok {
			tc = make(map[string]uint32)
			counts[occ.TargetID] = tc
		}
		for _, t := range terms {
			tc[t] = saturateAdd(tc[t], freq[t])
		}
	}
	return build(counts, opts)
}

func countsFromDocuments(docs []Document) map[uint32]map[string]uint32 {
	out := make(map[uint32]map[string]uint32, len(docs))
	for _, d := range docs {
		_, freq := token.Count(d.Text)
		if len(freq) == 0 {
			continue
		}
		out[d.ID] = freq
	}
	return out
}

func saturateAdd(a, b uint32) uint32 {
	const max = posting.TFMask
	sum := uint64(a) + uint64(b)
	if sum > max {
		return max
	}
	return uint32(sum)
}

func saturateTF(v uint32) uint16 {
	if v > posting.TFMask {
		return posting.TFMask
	}
	return uint16(v)
}

// build runs steps 2-9 of SPEC_FULL.md §4.4 over pre-tokenized,
// per-document term counts.
func build(counts map[uint32]map[string]uint32, opts BuildOptions) (*Descriptor, error) {
	log := opts.logger()
	n := opts.shardCount()

	// Step 2-4: group by term, accumulate postings, sort by doc_id.
	postingLists := make(map[string][]posting.Record)
	for docID, freq := range counts {
		for term, count := range freq {
			postingLists[term] = append(postingLists[term], posting.Record{
				DocID: docID,
				TF:    saturateTF(count),
			})
		}
	}
	for term := range postingLists {
		list := postingLists[term]
		sort.Slice(list, func(i, j int) bool { return list[i].DocID < list[j].DocID })
		postingLists[term] = list
	}

	// Step 5: body-only df filter.
	if opts.FilterBodyDF {
		for term, list := range postingLists {
			if uint32(len(list)) <= BodyDFThreshold {
				delete(postingLists, term)
			}
		}
	}

	// Step 6: df.
	df := make(map[string]uint32, len(postingLists))
	for term, list := range postingLists {
		df[term] = uint32(len(list))
	}

	// Step 7: partition by shard, each shard's term list sorted for a
	// deterministic, byte-reproducible write order.
	shardTerms := make([][]string, n)
	for term := range postingLists {
		s := posting.Shard(term, n)
		shardTerms[s] = append(shardTerms[s], term)
	}
	for s := range shardTerms {
		sort.Strings(shardTerms[s])
	}

	log.Info("index build starting", zap.Int("shards", n), zap.Int("terms", len(postingLists)))

	// Step 8: serialize per shard, in parallel (each shard owns its
	// files exclusively, so no cross-shard coordination is needed).
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		firstEr error
	)
	for shardID, terms := range shardTerms {
		if len(terms) == 0 {
			continue
		}
		wg.Add(1)
		go func(shardID int, terms []string) {
			defer wg.Done()
			if err := buildShard(shardID, terms, postingLists, opts); err != nil {
				mu.Lock()
				if firstEr == nil {
					firstEr = fmt.Errorf("index: shard %d: %w", shardID, err)
				}
				mu.Unlock()
			}
		}(shardID, terms)
	}
	wg.Wait()
	if firstEr != nil {
		return nil, firstEr
	}

	// Step 9: merge descriptors back from each shard's posting_locs
	// file and attach df.
	desc := NewDescriptor()
	for shardID, terms := range shardTerms {
		if len(terms) == 0 {
			continue
		}
		path := filepath.Join(opts.BaseDir, posting.PostingLocsFileName(shardID))
		locs, err := loadShardPostingLocs(path)
		if err != nil {
			return nil, fmt.Errorf("index: merge shard %d: %w", shardID, err)
		}
		for term, segs := range locs {
			desc.PostingLocs[term] = segs
		}
	}
	desc.DF = df

	log.Info("index build complete", zap.Int("terms", len(desc.DF)))
	return desc, nil
}

// shardAlreadyComplete reports whether every block file this shard
// would produce is already recorded in the checkpoint store with a
// matching byte size, in which case the shard's encode/write/upload
// pass can be skipped entirely on a retry.
func shardAlreadyComplete(shardID int, terms []string, postingLists map[string][]posting.Record, opts BuildOptions) bool {
	if opts.Checkpoint == nil {
		return false
	}
	var total int64
	for _, term := range terms {
		total += int64(len(postingLists[term])) * posting.RecordSize
	}
	blocks := int((total + posting.BlockSize - 1) / posting.BlockSize)
	for b := 0; b < blocks; b++ {
		want := int64(posting.BlockSize)
		if b == blocks-1 {
			want = total - int64(b)*posting.BlockSize
		}
		name := posting.FileName(shardID, b)
		size, ok, err := opts.Checkpoint.CompletedSize(name)
		if err != nil || !ok || size != want {
			return false
		}
	}
	return true
}

func buildShard(shardID int, terms []string, postingLists map[string][]posting.Record, opts BuildOptions) error {
	// Step 0 (SPEC_FULL.md §4.4): a shard whose complete set of blocks
	// is already checkpointed need not be re-encoded or re-uploaded;
	// this is what makes a retried shard task idempotent. The shard's
	// posting_locs file, written alongside its last block on the prior
	// attempt, is assumed still present in BaseDir for the merge step.
	if shardAlreadyComplete(shardID, terms, postingLists, opts) {
		opts.logger().Info("shard already checkpointed, skipping", zap.Int("shard", shardID))
		return nil
	}

	uploader := uploaderAdapter{s: opts.Store}
	checkpoint := opts.Checkpoint

	onUploaded := func(fileName string, size int64) error {
		if checkpoint == nil {
			return nil
		}
		return checkpoint.MarkComplete(fileName, size)
	}

	w, err := posting.NewMultiFileWriter(opts.BaseDir, shardID, opts.RemoteFolder, uploader, onUploaded)
	if err != nil {
		return err
	}

	locs := make(shardPostingLocs, len(terms))
	for _, term := range terms {
		encoded := posting.EncodeList(postingLists[term])
		segs, err := w.Write(encoded)
		if err != nil {
			return err
		}
		locs[term] = segs
	}
	if err := w.Close(); err != nil {
		return err
	}

	path := filepath.Join(opts.BaseDir, posting.PostingLocsFileName(shardID))
	if err := saveShardPostingLocs(path, locs); err != nil {
		return err
	}
	if opts.Store != nil {
		remote := opts.RemoteFolder + "/" + posting.PostingLocsFileName(shardID)
		if err := opts.Store.Upload(path, remote); err != nil {
			return fmt.Errorf("index: upload posting_locs: %w", err)
		}
	}
	return nil
}
