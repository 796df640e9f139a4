package token

// standardEnglishStopwords is a conventional English stopword list, the
// kind typically pulled from nltk.corpus.stopwords in the Python source
// this system was distilled from. It is kept as a plain Go literal here
// rather than loaded from a corpus file, since the set is static and
// baked into the binary in both build and query paths.
var standardEnglishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
	"hers", "herself", "it", "it's", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom",
	"this", "that", "that'll", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having",
	"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
	"or", "because", "as", "until", "while", "of", "at", "by", "for",
	"with", "about", "against", "between", "into", "through", "during",
	"before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further",
	"then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other",
	"some", "such", "no", "nor", "not", "only", "own", "same", "so",
	"than", "too", "very", "s", "t", "can", "will", "just", "don",
	"don't", "should", "should've", "now", "d", "ll", "m", "o", "re",
	"ve", "y", "ain", "aren", "aren't", "couldn", "couldn't", "didn",
	"didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't",
	"haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't",
	"mustn", "mustn't", "needn", "needn't", "shan", "shan't", "shouldn",
	"shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't",
	"wouldn", "wouldn't",
}

// corpusStopwords is the fixed, Wikipedia-specific list of high-frequency
// boilerplate terms (section headers, navigation furniture) that the
// standard English list does not cover.
var corpusStopwords = []string{
	"category", "references", "also", "external", "links", "may",
	"first", "see", "history", "people", "one", "two", "part", "thumb",
	"including", "second", "following", "many", "however", "would",
	"became",
}

// stopwordSet is the frozen union of standardEnglishStopwords and
// corpusStopwords, built once at package init.
var stopwordSet = buildStopwordSet()

func buildStopwordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(standardEnglishStopwords)+len(corpusStopwords))
	for _, w := range standardEnglishStopwords {
		set[w] = struct{}{}
	}
	for _, w := range corpusStopwords {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether term is in the frozen stopword set.
func IsStopword(term string) bool {
	_, found := stopwordSet[term]
	return found
}
