// Package query implements the ranked-retrieval engine: per-field
// posting retrieval, BM25 scoring, title/anchor/PageRank fusion,
// stable top-k selection, and the auxiliary single-field diagnostic
// endpoints.
package query

// Fixed fusion weights, tuned offline, per SPEC_FULL.md §4.7.
const (
	WeightTitle    = 0.1
	WeightAnchor   = 0.1
	WeightBody     = 25.0
	WeightPageRank = 0.01
)

// BM25 parameters. B is pinned to zero: document lengths are not
// persisted, so length normalization is deliberately omitted (see
// spec.md §1's Non-goals and §9's design note).
const (
	bm25K1 = 1.2
	bm25B  = 0.0
)

// FallbackCorpusSize is used for the BM25 idf computation when no
// PageRank map is available to derive N from (SPEC_FULL.md §9).
const FallbackCorpusSize = 6_348_910

// MaxResults is the maximum number of (doc_id, title) pairs search
// ever returns.
const MaxResults = 100
