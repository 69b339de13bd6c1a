// Package storage archives feed snapshots taken by cmd/tools/snapshotfeed.
// Snapshots are for diagnostics when the upstream sheet changes shape;
// the running site never reads from here (the feed stays the sole source
// of truth).
package storage

import (
	"context"
	"io"
)

type PutInput struct {
	Name        string // desired object name, e.g. "feed-20250829T101500.json"
	ContentType string
}

type PutResult struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
