package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("data:"+p), 0o644))
	}
}

func TestFSStoreList(t *testing.T) {
	root := t.TempDir()
	seed(t, root,
		"24-25雪季/回转成绩.pdf",
		"24-25雪季/photos/大回转.JPG",
		"24-25雪季/notes.txt",
		".hidden/secret.pdf",
		"README.md",
	)

	keys, err := NewFSStore(root).List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"24-25雪季/photos/大回转.JPG",
		"24-25雪季/回转成绩.pdf",
	}, keys, "only supported extensions, relative slash keys, sorted")
}

func TestFSStoreFetch(t *testing.T) {
	root := t.TempDir()
	seed(t, root, "24-25雪季/回转成绩.pdf")

	s := NewFSStore(root)
	b, err := s.Fetch(context.Background(), "24-25雪季/回转成绩.pdf")
	require.NoError(t, err)
	assert.Equal(t, "data:24-25雪季/回转成绩.pdf", string(b))

	_, err = s.Fetch(context.Background(), "missing.pdf")
	assert.Error(t, err)
}
