// Package titles loads the two small auxiliary lookup tables the query
// engine hydrates results with: the doc_id -> title map (built
// externally from the page id/title dictionary, out of scope per
// SPEC_FULL.md §1) and the doc_id -> page-view count map.
package titles

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
)

// Unknown is the sentinel title for a doc_id absent from the Map.
const Unknown = "N/A"

// Map is doc_id -> display title.
type Map map[uint32]string

// Title returns m[id], or Unknown if id is absent.
func (m Map) Title(id uint32) string {
	if t, ok := m[id]; ok {
		return t
	}
	return Unknown
}

// PageViews is doc_id -> view count. Absent keys are zero.
type PageViews map[uint32]uint64

// Get returns pv[id], or 0 if id is absent.
func (pv PageViews) Get(id uint32) uint64 {
	return pv[id]
}

// LoadMap decodes a gob-encoded doc_id->title map, the format this
// system's id_to_title.pkl is converted to (SPEC_FULL.md §4.5's
// replacement of pickle with a schema-explicit encoding applies here
// too, for consistency with the rest of the persisted state).
func LoadMap(r io.Reader) (Map, error) {
	var m Map
	if err := gob.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("titles: decode title map: %w", err)
	}
	return m, nil
}

// LoadPageViews decodes a gob-encoded doc_id->view-count map
// (pageviews.pkl's normalized form per SPEC_FULL.md §9).
func LoadPageViews(r io.Reader) (PageViews, error) {
	var pv PageViews
	if err := gob.NewDecoder(r).Decode(&pv); err != nil {
		return nil, fmt.Errorf("titles: decode pageviews map: %w", err)
	}
	return pv, nil
}

// SaveMap gob-encodes m, used by the offline conversion step that
// turns the source's pickled dictionaries into this format once.
func SaveMap(w io.Writer, m Map) error {
	if err := gob.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("titles: encode title map: %w", err)
	}
	return nil
}

// SavePageViews gob-encodes pv.
func SavePageViews(w io.Writer, pv PageViews) error {
	if err := gob.NewEncoder(w).Encode(pv); err != nil {
		return fmt.Errorf("titles: encode pageviews map: %w", err)
	}
	return nil
}

// SaveMapBytes/LoadMapBytes are convenience wrappers over byte slices,
// used directly by tests and by small in-memory fixtures.
func SaveMapBytes(m Map) ([]byte, error) {
	var buf bytes.Buffer
	if err := SaveMap(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func LoadMapBytes(b []byte) (Map, error) {
	return LoadMap(bytes.NewReader(b))
}
