package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// LocalStore keeps blobs on the local filesystem for development and
// self-hosted deployments. Files are served publicly by the HTTP server, so
// MakePublic is a no-op.
type LocalStore struct {
	root    string
	baseURL string
	logger  *zap.Logger
}

func NewLocalStore(root, baseURL string, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", root, err)
	}

	logger.Info("Local storage ready",
		zap.String("root", root),
		zap.String("base_url", baseURL),
	)

	return &LocalStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Root returns the directory served as the public file tree.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Save(_ context.Context, path string, data []byte, _ SaveOptions) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *LocalStore) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(path)))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *LocalStore) MakePublic(_ context.Context, _ string) error {
	return nil
}

func (s *LocalStore) PublicURL(path string) string {
	return s.baseURL + "/" + path
}
