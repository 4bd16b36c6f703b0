package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GCSStore persists blobs in a Google Cloud Storage bucket with public-URL
// semantics (https://storage.googleapis.com/{bucket}/{path}).
type GCSStore struct {
	client *storage.Client
	bucket string
	logger *zap.Logger
}

type GCSConfig struct {
	Bucket          string
	CredentialsFile string
}

func NewGCSStore(ctx context.Context, cfg GCSConfig, logger *zap.Logger) (*GCSStore, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	logger.Info("GCS storage ready", zap.String("bucket", cfg.Bucket))

	return &GCSStore{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

func (s *GCSStore) Save(ctx context.Context, path string, data []byte, opts SaveOptions) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(path).NewWriter(ctx)
	w.ContentType = opts.ContentType
	w.CacheControl = opts.CacheControl

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return nil
}

func (s *GCSStore) Exists(ctx context.Context, path string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.client.Bucket(s.bucket).Object(path).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return true, nil
}

func (s *GCSStore) MakePublic(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	acl := s.client.Bucket(s.bucket).Object(path).ACL()
	if err := acl.Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return fmt.Errorf("make %s public: %w", path, err)
	}
	return nil
}

func (s *GCSStore) PublicURL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, path)
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
