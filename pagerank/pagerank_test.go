package pagerank

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipCSV(t *testing.T, rows string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(rows))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return bytes.NewReader(buf.Bytes())
}

func TestLoadMergesRows(t *testing.T) {
	m := make(Map)
	require.NoError(t, Load(gzipCSV(t, "12,0.0031\n99,0.5\n"), m))

	assert.InDelta(t, 0.0031, m.Get(12), 1e-9)
	assert.InDelta(t, 0.5, m.Get(99), 1e-9)
	assert.Equal(t, 0.0, m.Get(999999999))
}

func TestLoadAcrossMultipleShards(t *testing.T) {
	m := make(Map)
	require.NoError(t, Load(gzipCSV(t, "1,1.0\n"), m))
	require.NoError(t, Load(gzipCSV(t, "2,2.0\n"), m))

	assert.Equal(t, 1.0, m.Get(1))
	assert.Equal(t, 2.0, m.Get(2))
}
