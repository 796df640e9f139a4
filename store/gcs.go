package store

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
)

// GCSStore is an ObjectStore backed by Google Cloud Storage. Object
// paths are used exactly as the caller passes them; no "postings_gcp/"
// prefix is added. It is the concrete stand-in for the distilled spec's
// out-of-scope "object-store client" collaborator.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore authenticates against GCS using Application Default
// Credentials (or the credentials file pointed to by
// GOOGLE_APPLICATION_CREDENTIALS, per the client library's normal
// resolution) and binds to bucket. A failure here is a ConfigMissing
// error per SPEC_FULL.md §7: callers should treat it as fatal at
// startup.
func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: gcs client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

// Upload copies the local file at localPath to remotePath in the
// bucket, overwriting any existing object there.
func (s *GCSStore) Upload(localPath, remotePath string) error {
	ctx := context.Background()
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("store: open %s: %w", localPath, err)
	}
	defer f.Close()

	w := s.client.Bucket(s.bucket).Object(remotePath).NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return fmt.Errorf("store: upload %s: %w", remotePath, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("store: finalize upload %s: %w", remotePath, err)
	}
	return nil
}

// Download fetches remotePath from the bucket into localPath.
func (s *GCSStore) Download(remotePath, localPath string) error {
	ctx := context.Background()
	r, err := s.client.Bucket(s.bucket).Object(remotePath).NewReader(ctx)
	if err != nil {
		return fmt.Errorf("store: open remote %s: %w", remotePath, err)
	}
	defer r.Close()

	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("store: create %s: %w", localPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("store: download %s: %w", remotePath, err)
	}
	return nil
}

// Exists reports whether remotePath has an object in the bucket.
func (s *GCSStore) Exists(remotePath string) (bool, error) {
	ctx := context.Background()
	_, err := s.client.Bucket(s.bucket).Object(remotePath).Attrs(ctx)
	if err == storage.ErrObjectNotExist {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: stat %s: %w", remotePath, err)
	}
	return true, nil
}

// Open streams remotePath directly without staging it to local disk.
func (s *GCSStore) Open(remotePath string) (io.ReadCloser, error) {
	ctx := context.Background()
	r, err := s.client.Bucket(s.bucket).Object(remotePath).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: open remote %s: %w", remotePath, err)
	}
	return r, nil
}

// Close releases the underlying GCS client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
