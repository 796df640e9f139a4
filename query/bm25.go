package query

import "math"

// idf computes the smoothed inverse document frequency for a term with
// document frequency df over a corpus of size n:
// ln(1 + (n - df + 0.5) / (df + 0.5)). See
// http://en.wikipedia.org/wiki/Okapi_BM25.
func idf(n, df uint64) float64 {
	return math.Log(1 + (float64(n)-float64(df)+0.5)/(float64(df)+0.5))
}

// saturation computes the BM25 term-frequency saturation
// tf*(k1+1)/(tf+k1*(1-b+b*dl/avgdl)); with b=0 the length-normalization
// term drops out entirely, per spec.md §1's Non-goals.
func saturation(tf uint16) float64 {
	f := float64(tf)
	return f * (bm25K1 + 1) / (f + bm25K1*(1-bm25B))
}

// bm25Contribution is the unweighted score a single query term
// contributes to a document's body score: idf * saturation. The caller
// multiplies it by WeightBody.
func bm25Contribution(n, df uint64, tf uint16) float64 {
	return idf(n, df) * saturation(tf)
}
