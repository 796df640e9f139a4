// Package index implements the Index Descriptor and the distributed-
// shuffle index-construction pipeline described in SPEC_FULL.md §4.4
// and §4.5: per-field term-frequency aggregation, document-frequency
// computation, and bucket-partitioned serialization into shard files
// plus a single merged descriptor blob.
package index

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/aosen/wikisearch/posting"
)

// DescriptorVersion is bumped whenever the on-disk encoding of
// Descriptor changes in an incompatible way. SPEC_FULL.md §4.5 replaces
// the source's Python pickle (which carries class identity implicitly)
// with this explicit version tag.
const DescriptorVersion = 1

// Descriptor is the in-memory, immutable-after-load index for one
// field (body, title, or anchor): document frequency and ordered
// posting segments per term.
type Descriptor struct {
	Version     int
	DF          map[string]uint32
	PostingLocs map[string][]posting.Segment
}

// NewDescriptor returns an empty, current-version Descriptor.
func NewDescriptor() *Descriptor {
	return &Descriptor{
		Version:     DescriptorVersion,
		DF:          make(map[string]uint32),
		PostingLocs: make(map[string][]posting.Segment),
	}
}

// Save gob-encodes the descriptor to w.
func (d *Descriptor) Save(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("index: encode descriptor: %w", err)
	}
	return nil
}

// SaveBytes is a convenience wrapper around Save that returns the
// encoded bytes directly.
func (d *Descriptor) SaveBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadDescriptor decodes a descriptor previously written by Save and
// checks its version tag. A version mismatch or decode failure is an
// IndexLoadFailure per SPEC_FULL.md §7: fatal for the affected field,
// the caller should refuse to start serving it.
func LoadDescriptor(r io.Reader) (*Descriptor, error) {
	var d Descriptor
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("index: decode descriptor: %w", err)
	}
	if d.Version != DescriptorVersion {
		return nil, fmt.Errorf("index: descriptor version %d unsupported (want %d)", d.Version, DescriptorVersion)
	}
	return &d, nil
}

// LoadDescriptorBytes decodes a descriptor from a raw byte blob.
func LoadDescriptorBytes(b []byte) (*Descriptor, error) {
	return LoadDescriptor(bytes.NewReader(b))
}

// Postings returns df and the segment list recorded for term, ok=false
// if the term is absent from the index.
func (d *Descriptor) Postings(term string) (df uint32, segs []posting.Segment, ok bool) {
	df, ok = d.DF[term]
	if !ok {
		return 0, nil, false
	}
	return df, d.PostingLocs[term], true
}
