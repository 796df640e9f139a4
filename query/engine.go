package query

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/aosen/wikisearch/posting"
	"github.com/aosen/wikisearch/token"
)

// Engine answers ranked-retrieval queries against a Catalog. It is
// read-only and safe for concurrent use: each Search call opens its own
// posting readers rather than sharing state across requests, matching
// SPEC_FULL.md §5's concurrency model.
type Engine struct {
	Catalog *Catalog
	Logger  *zap.Logger
	Metrics *Metrics
}

// NewEngine returns an Engine over catalog. logger and metrics may be
// nil; a nil logger falls back to zap.NewNop().
func NewEngine(catalog *Catalog, logger *zap.Logger, metrics *Metrics) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{Catalog: catalog, Logger: logger, Metrics: metrics}
}

// accumulator tracks fused scores per doc_id along with first-insertion
// order, so topK's tiebreak is deterministic regardless of map
// iteration order.
type accumulator struct {
	scores map[uint32]float64
	order  []uint32
}

func newAccumulator() *accumulator {
	return &accumulator{scores: make(map[uint32]float64)}
}

func (a *accumulator) add(docID uint32, delta float64) {
	if _, seen := a.scores[docID]; !seen {
		a.order = append(a.order, docID)
	}
	a.scores[docID] += delta
}

func (a *accumulator) toScoredDocs() scoredDocs {
	docs := make(scoredDocs, len(a.order))
	for i, id := range a.order {
		docs[i] = scored{docID: id, score: a.scores[id], seq: i}
	}
	return docs
}

// Search tokenizes queryText, scores every document it matches across
// the title, anchor and body fields plus a PageRank boost, and returns
// up to MaxResults title-hydrated hits ordered by descending fused
// score (spec.md §4.7). An empty or all-stopword query returns an
// empty, non-nil result slice.
func (e *Engine) Search(queryText string) []Result {
	start := time.Now()
	defer func() {
		e.Metrics.observeDuration(time.Since(start).Seconds())
	}()

	terms := token.Tokenize(queryText)
	if len(terms) == 0 {
		return []Result{}
	}

	acc := newAccumulator()
	n := e.Catalog.corpusSize()

	for _, term := range terms {
		e.scoreTitle(term, acc)
		e.scoreAnchor(term, acc)
		e.scoreBody(term, n, acc)
	}
	e.boostPageRank(acc)

	ids := topK(acc.toScoredDocs(), MaxResults)
	out := make([]Result, len(ids))
	for i, id := range ids {
		out[i] = Result{DocID: id, Title: e.Catalog.Titles.Title(id)}
	}
	return out
}

// readCapped opens a fresh reader over field, looks up term, caps df at
// posting.MaxDocsToRead, and returns the decoded records. A term absent
// from the field contributes nothing; a read error is logged, counted,
// and likewise treated as an empty contribution: a single bad term
// never fails the whole query (SPEC_FULL.md §7's PostingReadFailure
// handling).
func (e *Engine) readCapped(field FieldIndex, term string) []posting.Record {
	df, segs, ok := field.Descriptor.Postings(term)
	if !ok || df == 0 {
		return nil
	}
	capped := df
	if capped > posting.MaxDocsToRead {
		capped = posting.MaxDocsToRead
		e.Metrics.countPrune()
	}

	r := posting.NewMultiFileReader(field.BaseDir)
	defer r.Close()

	recs, err := r.ReadPostings(segs, capped)
	if err != nil {
		e.Logger.Warn("posting read failed, skipping term contribution",
			zap.String("term", term), zap.Error(err))
		e.Metrics.countReadError()
		return nil
	}
	return recs
}

func (e *Engine) scoreTitle(term string, acc *accumulator) {
	for _, rec := range e.readCapped(e.Catalog.Title, term) {
		acc.add(rec.DocID, WeightTitle)
	}
}

func (e *Engine) scoreAnchor(term string, acc *accumulator) {
	for _, rec := range e.readCapped(e.Catalog.Anchor, term) {
		acc.add(rec.DocID, WeightAnchor*float64(rec.TF))
	}
}

func (e *Engine) scoreBody(term string, n uint64, acc *accumulator) {
	df, _, ok := e.Catalog.Body.Descriptor.Postings(term)
	if !ok || df == 0 {
		return
	}
	for _, rec := range e.readCapped(e.Catalog.Body, term) {
		acc.add(rec.DocID, WeightBody*bm25Contribution(n, uint64(df), rec.TF))
	}
}

func (e *Engine) boostPageRank(acc *accumulator) {
	for docID := range acc.scores {
		pr := e.Catalog.PageRank.Get(docID)
		acc.add(docID, WeightPageRank*math.Log10(pr+1))
	}
}
