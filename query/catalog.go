package query

import (
	"github.com/aosen/wikisearch/index"
	"github.com/aosen/wikisearch/pagerank"
	"github.com/aosen/wikisearch/titles"
)

// FieldIndex pairs a loaded Descriptor with the local directory its
// block files were downloaded into, per SPEC_FULL.md §6's on-disk
// layout (one folder per field).
type FieldIndex struct {
	Descriptor *index.Descriptor
	BaseDir    string
}

// Catalog holds every immutable, memory-resident structure the query
// engine needs once the server has finished its startup sequence
// (spec.md §5's "Startup ordering"). It is read-only after
// construction and may be shared across concurrent requests without
// locking.
type Catalog struct {
	Body, Title, Anchor FieldIndex
	PageRank            pagerank.Map
	PageViews           titles.PageViews
	Titles              titles.Map

	// CorpusSize overrides the BM25 idf computation's N; 0 means
	// "derive from len(PageRank), falling back to
	// FallbackCorpusSize if PageRank is empty" (SPEC_FULL.md §9).
	CorpusSize uint64
}

func (c *Catalog) corpusSize() uint64 {
	if c.CorpusSize != 0 {
		return c.CorpusSize
	}
	if n := len(c.PageRank); n > 0 {
		return uint64(n)
	}
	return FallbackCorpusSize
}
