// Package storage provides the device-local key-value store backed by a
// file bucket, plus a filesystem watcher for cross-process reloads.
package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// FileStore implements service.KeyValueStore and service.KeyWatcher on top
// of a local fileblob bucket. Each key maps to one file under the data
// directory.
type FileStore struct {
	bucket *blob.Bucket
	dir    string
	logger *slog.Logger
}

// NewFileStore opens the bucket under cfg.Storage.Path, creating the
// directory if needed, and closes the bucket on shutdown.
func NewFileStore(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*FileStore, error) {
	store, err := openFileStore(cfg.Storage.Path, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.bucket.Close()
		},
	})

	return store, nil
}

func openFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create storage directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file bucket")
	}

	return &FileStore{
		bucket: bucket,
		dir:    dir,
		logger: logger,
	}, nil
}

var _ service.KeyValueStore = (*FileStore)(nil)
var _ service.KeyWatcher = (*FileStore)(nil)

// Read returns the stored bytes for the key, or (nil, nil) when the key has
// never been written.
func (s *FileStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read key")
	}

	return data, nil
}

// Write replaces the stored bytes for the key.
func (s *FileStore) Write(ctx context.Context, key string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrap(err, "failed to write key")
	}

	return nil
}

// Watch emits a signal whenever another process rewrites the key's file.
// Signals are coalesced; the channel closes when ctx is done.
func (s *FileStore) Watch(ctx context.Context, key string) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fs watcher")
	}

	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()

		return nil, errors.Wrap(err, "failed to watch storage directory")
	}

	events := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()
		defer close(events)

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != key {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				select {
				case events <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("storage watcher error", slog.Any("error", err))
			}
		}
	}()

	return events, nil
}
