package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCorpusSplitsFieldsAndAnchors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.jsonl")
	content := `{"id":1,"title":"Rust","text":"rust is a systems language","outlinks":[{"target_id":2,"text":"golang"}]}
{"id":2,"title":"Go","text":"go is a systems language too","outlinks":[]}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	bodyDocs, titleDocs, anchors, err := loadCorpus(path)
	require.NoError(t, err)

	require.Len(t, bodyDocs, 2)
	require.Len(t, titleDocs, 2)
	assert.Equal(t, "Rust", titleDocs[0].Text)
	assert.Equal(t, "rust is a systems language", bodyDocs[0].Text)

	require.Len(t, anchors, 1)
	assert.Equal(t, uint32(2), anchors[0].TargetID)
	assert.Equal(t, "golang", anchors[0].Text)
}

func TestLoadCorpusSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.jsonl")
	content := "{\"id\":1,\"title\":\"A\",\"text\":\"a\"}\n\n{\"id\":2,\"title\":\"B\",\"text\":\"b\"}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	bodyDocs, _, _, err := loadCorpus(path)
	require.NoError(t, err)
	assert.Len(t, bodyDocs, 2)
}

func TestLoadCorpusRejectsMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("not json\n"), 0o644))

	_, _, _, err := loadCorpus(path)
	assert.Error(t, err)
}
