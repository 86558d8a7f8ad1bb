// Package storage persists generated directory documents in a blob bucket.
package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"strings"

	"directory/config"
	"directory/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const jsonContentType = "application/json"

type blobStore struct {
	bucket *blob.Bucket
	prefix string
}

// NewBlobStore wraps an opened bucket. Keys are stored under prefix.
func NewBlobStore(bucket *blob.Bucket, prefix string) service.SnapshotStore {
	return &blobStore{
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Params holds dependencies for the snapshot store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSnapshotStore opens the configured bucket and closes it on shutdown.
func NewSnapshotStore(params Params) (service.SnapshotStore, error) {
	cfg := params.Config.Snapshot
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("snapshot bucket url is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Snapshot bucket opened",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("prefix", cfg.Prefix),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStore(bucket, cfg.Prefix), nil
}

// Put serializes value as JSON and writes it under key.
func (s *blobStore) Put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode snapshot %s", key)
	}

	opts := &blob.WriterOptions{ContentType: jsonContentType}
	if err := s.bucket.WriteAll(ctx, s.objectKey(key), data, opts); err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", key)
	}

	return nil
}

// Get reads the JSON stored under key into value.
func (s *blobStore) Get(ctx context.Context, key string, value any) error {
	data, err := s.bucket.ReadAll(ctx, s.objectKey(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrSnapshotNotFound
		}

		return errors.Wrapf(err, "failed to read snapshot %s", key)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return errors.Wrapf(err, "failed to decode snapshot %s", key)
	}

	return nil
}

func (s *blobStore) objectKey(key string) string {
	key = strings.TrimLeft(key, "/")
	if s.prefix == "" {
		return key
	}

	return path.Join(s.prefix, key)
}
