package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeDropsStopwords(t *testing.T) {
	got := Tokenize("The quick brown fox also became history")
	assert.Equal(t, []string{"quick", "brown", "fox"}, got)
}

func TestTokenizeEmptyForAllStopwords(t *testing.T) {
	got := Tokenize("The The the")
	assert.Empty(t, got)
}

func TestTokenizeEmptyString(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}

func TestTokenizePreservesOrderAndDuplicates(t *testing.T) {
	got := Tokenize("wikipedia search wikipedia engine search")
	assert.Equal(t, []string{"wikipedia", "search", "wikipedia", "engine", "search"}, got)
}

func TestTokenizeLowercases(t *testing.T) {
	got := Tokenize("WIKIPEDIA Search")
	assert.Equal(t, []string{"wikipedia", "search"}, got)
}

func TestTokenizeEquivalenceBuildAndQuery(t *testing.T) {
	text := "Rust programming language memory safety #systems @golang"
	require.Equal(t, Tokenize(text), Tokenize(text), "tokenizer must be deterministic and pure")
}

func TestCountAccumulatesFrequency(t *testing.T) {
	terms, freq := Count("rust rust programming rust")
	require.Equal(t, []string{"rust", "programming"}, terms)
	assert.Equal(t, uint32(3), freq["rust"])
	assert.Equal(t, uint32(1), freq["programming"])
}

func TestCountEmptyText(t *testing.T) {
	terms, freq := Count("")
	assert.Nil(t, terms)
	assert.Nil(t, freq)
}
