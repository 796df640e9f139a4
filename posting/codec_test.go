package posting

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeLiteral(t *testing.T) {
	r := Record{DocID: 305419896, TF: 65534}
	buf := make([]byte, RecordSize)
	Encode(r, buf)
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78, 0xFF, 0xFE}, buf)

	got, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestCodecRoundTripProperty(t *testing.T) {
	f := func(docID uint32, tf uint16) bool {
		r := Record{DocID: docID, TF: tf}
		buf := make([]byte, RecordSize)
		Encode(r, buf)
		got, err := Decode(buf)
		return err == nil && got == r
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 2000}))
}

func TestDecodeAllTruncatesShortTail(t *testing.T) {
	records := []Record{{DocID: 1, TF: 2}, {DocID: 2, TF: 3}}
	b := EncodeList(records)
	b = append(b, 0x01, 0x02) // short trailing fragment, not a full record
	got := DecodeAll(b)
	assert.Equal(t, records, got)
}

func TestDecodeShortBufferErrors(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3})
	assert.Error(t, err)
}
