// Package posting implements the binary posting-list format shared by
// the index builder and the query engine: the 6-byte (doc_id, tf)
// record codec, the term-to-shard hash, and the block-bounded
// multi-file writer/reader that stores and retrieves posting lists on
// disk.
package posting

import (
	"encoding/binary"
	"fmt"
)

// RecordSize is the encoded width, in bytes, of a single posting.
const RecordSize = 6

// TFMask saturates the term-frequency field at 2^16-1, matching the
// source format's TF_MASK.
const TFMask = 1<<16 - 1

// Record is a single (doc_id, tf) posting.
type Record struct {
	DocID uint32
	TF    uint16
}

// Encode writes r as 6 big-endian bytes into dst, which must be at
// least RecordSize bytes long. The encoded 48-bit word equals
// (doc_id << 16) | (tf & 0xFFFF).
func Encode(r Record, dst []byte) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(r.DocID)<<16|uint64(r.TF&TFMask))
	copy(dst, buf[2:8])
}

// EncodeList concatenates the big-endian encoding of every record in
// order into a single byte slice.
func EncodeList(records []Record) []byte {
	out := make([]byte, len(records)*RecordSize)
	for i, r := range records {
		Encode(r, out[i*RecordSize:])
	}
	return out
}

// Decode reads a single posting from the first RecordSize bytes of b.
func Decode(b []byte) (Record, error) {
	if len(b) < RecordSize {
		return Record{}, fmt.Errorf("posting: short record: need %d bytes, got %d", RecordSize, len(b))
	}
	docID := binary.BigEndian.Uint32(b[0:4])
	tf := binary.BigEndian.Uint16(b[4:6])
	return Record{DocID: docID, TF: tf}, nil
}

// DecodeAll decodes every RecordSize-byte chunk of b in order. Any
// trailing bytes that don't form a full record are silently dropped,
// tolerating a short final segment rather than erroring — the reader is
// responsible for truncating b to a multiple of RecordSize before it
// gets here, but DecodeAll is defensive about it too.
func DecodeAll(b []byte) []Record {
	n := len(b) / RecordSize
	out := make([]Record, n)
	for i := 0; i < n; i++ {
		out[i], _ = Decode(b[i*RecordSize:])
	}
	return out
}
