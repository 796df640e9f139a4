// Package pagerank consumes the precomputed, gzip'd CSV PageRank output
// described in SPEC_FULL.md §6 ("pr/part-*.csv.gz", rows of
// "doc_id,score"). Computing PageRank itself is out of scope; this
// package only loads the result into the immutable in-memory map the
// query engine boosts scores with.
package pagerank

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Map is doc_id -> PageRank score. Absent keys are treated as zero by
// every consumer; the map itself never stores a zero-valued entry for
// an absent document.
type Map map[uint32]float64

// Load reads one gzip'd "doc_id,score" CSV stream (one "part-*.csv.gz"
// file) and merges its rows into dst. Call it once per shard of the
// PageRank output to build the full map.
func Load(r io.Reader, dst Map) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("pagerank: open gzip stream: %w", err)
	}
	defer gz.Close()

	cr := csv.NewReader(gz)
	cr.FieldsPerRecord = 2
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("pagerank: read csv row: %w", err)
		}
		id, err := strconv.ParseUint(rec[0], 10, 32)
		if err != nil {
			return fmt.Errorf("pagerank: parse doc_id %q: %w", rec[0], err)
		}
		score, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return fmt.Errorf("pagerank: parse score %q: %w", rec[1], err)
		}
		dst[uint32(id)] = score
	}
}

// Get returns the PageRank score for id, or 0 if id is absent.
func (m Map) Get(id uint32) float64 {
	return m[id]
}
