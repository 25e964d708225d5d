package mediastore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"cordwain/internal/shared/config"
	"cordwain/internal/shared/logger"
)

// MinioStore stores uploaded specification media in an S3-compatible
// bucket. Objects are addressed by the deterministic key the upload use
// case derives from order, position and view.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    logger.Interface
}

func NewMinioStore(cfg *config.MediaStoreConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create media store client: %w", err)
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger.NewLogger().With("component", "mediastore"),
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet. Called once
// at startup.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	s.logger.Infow("media bucket created", "bucket", s.bucket)
	return nil
}

func (s *MinioStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store media object: %w", err)
	}

	s.logger.Debugw("media object stored",
		"bucket", s.bucket,
		"object", objectName,
		"size", size)

	return fmt.Sprintf("%s/%s", s.publicURL, objectName), nil
}

func (s *MinioStore) Remove(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove media object: %w", err)
	}

	s.logger.Debugw("media object removed",
		"bucket", s.bucket,
		"object", objectName)

	return nil
}
