package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aosen/wikisearch/index"
)

// corpusPage is one line of the newline-delimited JSON corpus file
// "wikisearch build" reads: a document's id, title, body text, and its
// outbound links (each carrying the anchor text a reader would click).
// Parsing the actual Wikipedia XML/parquet dump into this shape is out
// of scope (SPEC_FULL.md §1 lists parquet ingestion as an external
// collaborator); this format is the builder's own concrete input
// contract.
type corpusPage struct {
	ID       uint32       `json:"id"`
	Title    string       `json:"title"`
	Text     string       `json:"text"`
	Outlinks []corpusLink `json:"outlinks"`
}

type corpusLink struct {
	TargetID uint32 `json:"target_id"`
	Text     string `json:"text"`
}

// loadCorpus reads the newline-delimited JSON file at path and splits
// it into the three input shapes the per-field builders expect.
func loadCorpus(path string) (bodyDocs, titleDocs []index.Document, anchors []index.AnchorOccurrence, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cli: open corpus %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var page corpusPage
		if err := json.Unmarshal(line, &page); err != nil {
			return nil, nil, nil, fmt.Errorf("cli: parse corpus line %d: %w", lineNo, err)
		}
		bodyDocs = append(bodyDocs, index.Document{ID: page.ID, Text: page.Text})
		titleDocs = append(titleDocs, index.Document{ID: page.ID, Text: page.Title})
		for _, link := range page.Outlinks {
			anchors = append(anchors, index.AnchorOccurrence{TargetID: link.TargetID, Text: link.Text})
		}
	}
	if err := sc.Err(); err != nil && err != io.EOF {
		return nil, nil, nil, fmt.Errorf("cli: scan corpus: %w", err)
	}
	return bodyDocs, titleDocs, anchors, nil
}
