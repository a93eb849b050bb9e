package mediastore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore keeps media as plain files under a root directory. References
// are paths relative to the root.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("error creating media dir: %w", err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Put(ctx context.Context, sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("error opening source file: %w", err)
	}
	defer src.Close()

	key := NewStorageKey() + filepath.Ext(sourcePath)
	target := filepath.Join(s.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("error creating media dir: %w", err)
	}

	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("error creating media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("error copying media file: %w", err)
	}

	return key, nil
}

func (s *LocalStore) ResolveURL(ctx context.Context, ref string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(s.root, filepath.FromSlash(ref)))
	if err != nil {
		return "", fmt.Errorf("error resolving media path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("error resolving media file: %w", err)
	}
	return "file://" + abs, nil
}
