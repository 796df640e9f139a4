package query

import (
	"math"

	"github.com/aosen/wikisearch/token"
)

// SearchBody ranks documents by raw body tf * log10(N/df), with no BM25
// saturation or fusion weights. Diagnostic endpoint, SPEC_FULL.md §6's
// /search_body.
func (e *Engine) SearchBody(queryText string) []Result {
	return e.searchSingleField(queryText, func(term string, acc *accumulator) {
		df, _, ok := e.Catalog.Body.Descriptor.Postings(term)
		if !ok || df == 0 {
			return
		}
		n := e.Catalog.corpusSize()
		weight := math.Log10(float64(n) / float64(df))
		for _, rec := range e.readCapped(e.Catalog.Body, term) {
			acc.add(rec.DocID, float64(rec.TF)*weight)
		}
	})
}

// SearchTitle ranks documents by raw title term count (each occurrence
// contributes 1). Diagnostic endpoint, SPEC_FULL.md §6's /search_title.
func (e *Engine) SearchTitle(queryText string) []Result {
	return e.searchSingleField(queryText, func(term string, acc *accumulator) {
		for _, rec := range e.readCapped(e.Catalog.Title, term) {
			acc.add(rec.DocID, float64(rec.TF))
		}
	})
}

// SearchAnchor ranks documents by raw anchor-text term frequency.
// Diagnostic endpoint, SPEC_FULL.md §6's /search_anchor.
func (e *Engine) SearchAnchor(queryText string) []Result {
	return e.searchSingleField(queryText, func(term string, acc *accumulator) {
		for _, rec := range e.readCapped(e.Catalog.Anchor, term) {
			acc.add(rec.DocID, float64(rec.TF))
		}
	})
}

func (e *Engine) searchSingleField(queryText string, score func(term string, acc *accumulator)) []Result {
	terms := token.Tokenize(queryText)
	if len(terms) == 0 {
		return []Result{}
	}

	acc := newAccumulator()
	for _, term := range terms {
		score(term, acc)
	}

	ids := topK(acc.toScoredDocs(), MaxResults)
	out := make([]Result, len(ids))
	for i, id := range ids {
		out[i] = Result{DocID: id, Title: e.Catalog.Titles.Title(id)}
	}
	return out
}
