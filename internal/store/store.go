package store

import "context"

// Store is the narrow contract the pipeline needs from source-file storage:
// list candidate keys under a root prefix and fetch bytes for one key.
type Store interface {
	List(ctx context.Context) ([]string, error)
	Fetch(ctx context.Context, key string) ([]byte, error)
}
