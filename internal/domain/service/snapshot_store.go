package service

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned when no snapshot exists under a key.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists generated JSON documents such as sitemap entries.
type SnapshotStore interface {
	// Put serializes value as JSON and stores it under key.
	Put(ctx context.Context, key string, value any) error

	// Get decodes the JSON stored under key into value.
	Get(ctx context.Context, key string, value any) error
}
