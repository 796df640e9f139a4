// Package token implements the tokenizer shared by the index builder and
// the query engine. It is a pure function: the same input text must
// yield the same token sequence whether it is called while building an
// index or while answering a query, since the whole system depends on
// that equivalence for correctness.
package token

import (
	"regexp"
	"strings"
)

// termPattern matches a normalized term: a word character, '#' or '@',
// followed by 2 to 24 word characters, each of which may be preceded by
// a single hyphen or apostrophe (3 to 25 characters in all, not
// counting those separators).
var termPattern = regexp.MustCompile(`[#@\w](['\-]?\w){2,24}`)

// Tokenize splits text into an ordered sequence of normalized terms,
// lowercasing the input, matching termPattern, and dropping any match
// present in the stopword set. Duplicates are preserved in order so
// callers can accumulate per-document term frequencies by counting.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	matches := termPattern.FindAllString(lower, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if IsStopword(m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Count tokenizes text and folds the result into per-term occurrence
// counts, preserving first-seen order in the returned slice of terms.
func Count(text string) (terms []string, freq map[string]uint32) {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil, nil
	}
	freq = make(map[string]uint32, len(tokens))
	for _, t := range tokens {
		if freq[t] == 0 {
			terms = append(terms, t)
		}
		freq[t]++
	}
	return terms, freq
}
