// Package localfs implements the document store over a local directory,
// used for development and tests.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/payops/inquiry-reader/internal/core/domain"
)

type Storage struct {
	basePath string
}

func New(basePath string) (*Storage, error) {
	if basePath == "" {
		basePath = "./data/inquiries"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Storage{basePath: basePath}, nil
}

func (s *Storage) List(_ context.Context, prefix string, maxDepth int) ([]string, error) {
	root := filepath.Join(s.basePath, filepath.FromSlash(prefix))

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(s.basePath, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if depthOf(rel, prefix) > maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, domain.WrapError(domain.ErrTransport, "list "+prefix, err)
	}

	sort.Strings(paths)
	return paths, nil
}

func (s *Storage) Fetch(_ context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Join(s.basePath, filepath.FromSlash(path)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.WrapError(domain.ErrDocumentNotFound, "fetch "+path, err)
		}
		return nil, domain.WrapError(domain.ErrTransport, "fetch "+path, err)
	}
	return content, nil
}

// depthOf counts folder levels below the listing prefix.
func depthOf(rel, prefix string) int {
	rel = strings.Trim(strings.TrimPrefix(rel, strings.Trim(prefix, "/")), "/")
	if rel == "" || rel == "." {
		return 0
	}
	return strings.Count(rel, "/") + 1
}
