// Package store provides the external-collaborator adapters the core
// index builder and query engine depend on through narrow interfaces:
// a durable object store for shard files and descriptor blobs, and a
// local build-checkpoint store for idempotent retries.
package store

import "io"

// ObjectStore is the narrow interface the builder and server need from
// a remote blob store: push a local file to a deterministic path,
// fetch it back, and check whether it already exists (so a retried
// builder task can skip redoing completed work). Implementations must
// make Upload idempotent: uploading the same bytes to the same path
// twice must leave the store in the same state as uploading it once.
type ObjectStore interface {
	Upload(localPath, remotePath string) error
	Download(remotePath, localPath string) error
	Exists(remotePath string) (bool, error)
	Open(remotePath string) (io.ReadCloser, error)
}
