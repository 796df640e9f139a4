package titles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleSentinelForUnknown(t *testing.T) {
	m := Map{1: "Go (programming language)"}
	assert.Equal(t, "Go (programming language)", m.Title(1))
	assert.Equal(t, Unknown, m.Title(999))
}

func TestPageViewsAbsentIsZero(t *testing.T) {
	pv := PageViews{5: 120}
	assert.Equal(t, uint64(120), pv.Get(5))
	assert.Equal(t, uint64(0), pv.Get(6))
}

func TestMapSaveLoadRoundTrip(t *testing.T) {
	m := Map{1: "Rust", 2: "Go", 3: "Wikipedia"}
	b, err := SaveMapBytes(m)
	require.NoError(t, err)

	got, err := LoadMapBytes(b)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}
