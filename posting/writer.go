package posting

import (
	"fmt"
	"os"
	"path/filepath"
)

// Uploader hands a freshly closed local file off to durable storage at
// a deterministic remote path. Implementations must treat repeated
// uploads to the same path as an overwrite, since a retried builder
// task may upload the same shard twice.
type Uploader interface {
	Upload(localPath, remotePath string) error
}

// NopUploader is an Uploader that does nothing, useful for tests and
// for builds that only need the local .bin files (e.g. when serving
// directly off local disk).
type NopUploader struct{}

// Upload implements Uploader by doing nothing.
func (NopUploader) Upload(string, string) error { return nil }

// MultiFileWriter is a sequential binary writer that spreads its output
// across files of up to BlockSize bytes each, all named
// "{shardID}_{block:03d}.bin" under baseDir. It holds exactly one file
// open at a time; a shard's writer owns its files exclusively, so two
// writers for different shards never contend.
type MultiFileWriter struct {
	baseDir    string
	shardID    int
	remoteDir  string
	uploader   Uploader
	onUploaded func(fileName string, size int64) error

	block int
	f     *os.File
	pos   int64
}

// NewMultiFileWriter opens the first block file for shardID under
// baseDir. remoteDir is the folder name the uploader should place
// closed files under (e.g. "postings_body"). onUploaded, if non-nil, is
// called after each successful upload with the closed file's name and
// final size — the index builder uses this hook to record a build
// checkpoint.
func NewMultiFileWriter(baseDir string, shardID int, remoteDir string, uploader Uploader, onUploaded func(string, int64) error) (*MultiFileWriter, error) {
	w := &MultiFileWriter{
		baseDir:    baseDir,
		shardID:    shardID,
		remoteDir:  remoteDir,
		uploader:   uploader,
		onUploaded: onUploaded,
	}
	if err := w.openNext(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *MultiFileWriter) openNext() error {
	name := FileName(w.shardID, w.block)
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("posting: create block file %s: %w", name, err)
	}
	w.f = f
	w.pos = 0
	return nil
}

// Write appends b, splitting across block boundaries as needed, and
// returns the ordered sequence of segments the bytes landed in.
func (w *MultiFileWriter) Write(b []byte) ([]Segment, error) {
	var locs []Segment
	for len(b) > 0 {
		remaining := int64(BlockSize) - w.pos
		if remaining == 0 {
			if err := w.rollover(); err != nil {
				return nil, err
			}
			remaining = BlockSize
		}

		n := int64(len(b))
		if n > remaining {
			n = remaining
		}

		locs = append(locs, Segment{File: filepath.Base(w.f.Name()), Offset: uint64(w.pos)})
		if _, err := w.f.Write(b[:n]); err != nil {
			return nil, fmt.Errorf("posting: write block file: %w", err)
		}
		w.pos += n
		b = b[n:]
	}
	return locs, nil
}

func (w *MultiFileWriter) rollover() error {
	if err := w.closeAndUpload(); err != nil {
		return err
	}
	w.block++
	return w.openNext()
}

func (w *MultiFileWriter) closeAndUpload() error {
	name := w.f.Name()
	size := w.pos
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("posting: close block file: %w", err)
	}
	if w.uploader != nil {
		remote := filepath.ToSlash(filepath.Join(w.remoteDir, filepath.Base(name)))
		if err := w.uploader.Upload(name, remote); err != nil {
			return fmt.Errorf("posting: upload %s: %w", name, err)
		}
	}
	if w.onUploaded != nil {
		if err := w.onUploaded(filepath.Base(name), size); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes and uploads the writer's current file. It must be
// called exactly once, after the last Write.
func (w *MultiFileWriter) Close() error {
	return w.closeAndUpload()
}
