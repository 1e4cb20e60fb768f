package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/fsun/ski-results/constants"
)

// GCSStore lists and fetches result sheets from a Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
	prefix string
	logger *slog.Logger
}

func NewGCSStore(ctx context.Context, bucket, prefix string, logger *slog.Logger) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket must be provided")
	}
	if logger == nil {
		logger = slog.Default()
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket, prefix: prefix, logger: logger}, nil
}

// List returns all object keys under the prefix with a supported extension.
func (s *GCSStore) List(ctx context.Context) ([]string, error) {
	var keys []string
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: s.prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		ext := constants.NormalizeExt(path.Ext(attrs.Name))
		if _, ok := constants.SupportedExtensions[ext]; ok {
			keys = append(keys, attrs.Name)
		}
	}
	s.logger.Info("store.gcs.list", "bucket", s.bucket, "prefix", s.prefix, "keys", len(keys))
	return keys, nil
}

// Fetch reads one object fully into memory.
func (s *GCSStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open object %s: %w", key, err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			s.logger.Warn("store.gcs.close_error", "key", key, "error", cerr)
		}
	}()
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}
	return b, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
