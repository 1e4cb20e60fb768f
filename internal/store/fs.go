package store

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsun/ski-results/constants"
)

// FSStore serves files from a local directory tree. Keys are paths relative
// to the root, so season inference and classification behave the same as
// against bucket storage.
type FSStore struct {
	Root       string
	SkipHidden bool
}

func NewFSStore(root string) *FSStore {
	return &FSStore{Root: root, SkipHidden: true}
}

func (s *FSStore) List(_ context.Context) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(s.Root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if s.SkipHidden && strings.HasPrefix(filepath.Base(p), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(p))
		if _, ok := constants.SupportedExtensions[ext]; !ok {
			return nil
		}
		rel, err := filepath.Rel(s.Root, p)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *FSStore) Fetch(_ context.Context, key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(key)))
}
