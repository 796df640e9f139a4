package posting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	dir := t.TempDir()

	w, err := NewMultiFileWriter(dir, 0, "postings_body", NopUploader{}, nil)
	require.NoError(t, err)

	records := []Record{{DocID: 1, TF: 2}, {DocID: 2, TF: 1}, {DocID: 5, TF: 7}}
	segs, err := w.Write(EncodeList(records))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := NewMultiFileReader(dir)
	defer r.Close()

	got, err := r.ReadPostings(segs, uint32(len(records)))
	require.NoError(t, err)
	require.Equal(t, records, got)
}

func TestWriterSplitsAcrossBlockBoundary(t *testing.T) {
	dir := t.TempDir()

	w, err := NewMultiFileWriter(dir, 3, "postings_body", NopUploader{}, nil)
	require.NoError(t, err)

	// enough postings that the encoded bytes cross BlockSize at least once
	n := BlockSize/RecordSize + 10
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{DocID: uint32(i), TF: 1}
	}
	segs, err := w.Write(EncodeList(records))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Greater(t, len(segs), 1, "expected the write to span more than one segment")

	r := NewMultiFileReader(dir)
	defer r.Close()

	got, err := r.ReadPostings(segs, uint32(n))
	require.NoError(t, err)
	require.Equal(t, records, got)
}

func TestReaderTruncatesShortFinalSegment(t *testing.T) {
	dir := t.TempDir()

	w, err := NewMultiFileWriter(dir, 1, "postings_body", NopUploader{}, nil)
	require.NoError(t, err)
	segs, err := w.Write(EncodeList([]Record{{DocID: 9, TF: 4}}))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := NewMultiFileReader(dir)
	defer r.Close()

	// ask for more postings than were actually written; the reader
	// should still return the one record it could decode rather than error
	got, err := r.ReadPostings(segs, 2)
	require.NoError(t, err)
	require.Equal(t, []Record{{DocID: 9, TF: 4}}, got)
}
