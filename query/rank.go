package query

import "sort"

// Result is one ranked, title-hydrated search hit.
type Result struct {
	DocID uint32
	Title string
}

// scored pairs a doc_id with its fused score and the order it first
// entered the score map, so ties can be broken by insertion order
// (spec.md §4.7 step 4) instead of the arbitrary order a map range
// would otherwise produce.
type scored struct {
	docID   uint32
	score   float64
	seq     int
}

// scoredDocs is adapted from the teacher's ranker.Rank (wukongranker):
// a slice with a stable, descending-by-score Sort, ties broken by
// first-seen order.
type scoredDocs []scored

func (d scoredDocs) Len() int      { return len(d) }
func (d scoredDocs) Swap(i, j int) { d[i], d[j] = d[j], d[i] }
func (d scoredDocs) Less(i, j int) bool {
	if d[i].score != d[j].score {
		return d[i].score > d[j].score
	}
	return d[i].seq < d[j].seq
}

// topK sorts docs by descending score (ties broken by insertion order)
// and returns at most k doc IDs.
func topK(docs scoredDocs, k int) []uint32 {
	sort.Stable(docs)
	if k > 0 && len(docs) > k {
		docs = docs[:k]
	}
	out := make([]uint32, len(docs))
	for i, d := range docs {
		out[i] = d.docID
	}
	return out
}
