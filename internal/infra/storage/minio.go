// Package storage provides the object store for receipt images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/spendtrack/backend/internal/application/adapter"
)

var _ adapter.ObjectStorage = (*MinioStorage)(nil)

// Config holds the S3 compatible endpoint settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// MinioStorage implements adapter.ObjectStorage on any S3 compatible store.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage connects to the store and creates the bucket when missing.
func NewMinioStorage(ctx context.Context, cfg Config) (*MinioStorage, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		slog.Info("Created storage bucket", "bucket", cfg.Bucket)
	}

	return &MinioStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

func newClient(cfg Config) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}

func (s *MinioStorage) Put(ctx context.Context, path string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStorage) Remove(ctx context.Context, paths []string) error {
	var errs []error
	for _, p := range paths {
		if err := s.client.RemoveObject(ctx, s.bucket, p, minio.RemoveObjectOptions{}); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

func (s *MinioStorage) URL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, path, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Ping checks that the bucket is reachable.
func (s *MinioStorage) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}
