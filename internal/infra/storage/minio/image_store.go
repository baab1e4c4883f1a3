// Package minio stores uploaded images in an S3-compatible bucket.
package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"canteen/config"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/service"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const publicReadPolicy = `{
	"Version": "2012-10-17",
	"Statement": [
		{
			"Action": ["s3:GetObject"],
			"Effect": "Allow",
			"Principal": "*",
			"Resource": "arn:aws:s3:::%s/*"
		}
	]
}`

// objectStorage is the subset of *minio.Client the store relies on.
type objectStorage interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	SetBucketPolicy(ctx context.Context, bucketName, policy string) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type imageStore struct {
	client    objectStorage
	bucket    string
	publicURL string
	logger    *slog.Logger
}

// Params holds dependencies for the image store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates the image store. Without a configured endpoint every upload
// fails with ErrMediaStorageDisabled.
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.Media
	if !cfg.Enabled() {
		params.Logger.Info("Media storage not configured, image uploads disabled")

		return disabledStore{}, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}

	publicURL := cfg.PublicBaseURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + cfg.Endpoint
	}

	store := newImageStore(client, cfg.Bucket, publicURL, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.ensureBucket(ctx)
		},
	})

	return store, nil
}

func newImageStore(client objectStorage, bucket, publicURL string, logger *slog.Logger) *imageStore {
	return &imageStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

// ensureBucket creates the bucket with a public read policy when missing.
func (s *imageStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrapf(err, "failed to check bucket %s", s.bucket)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrapf(err, "failed to create bucket %s", s.bucket)
	}

	if err := s.client.SetBucketPolicy(ctx, s.bucket, fmt.Sprintf(publicReadPolicy, s.bucket)); err != nil {
		return errors.Wrapf(err, "failed to set policy on bucket %s", s.bucket)
	}

	s.logger.Info("Created image bucket", slog.String("bucket", s.bucket))

	return nil
}

// Put uploads the image and returns its public URL
func (s *imageStore) Put(
	ctx context.Context,
	objectKey string,
	content io.Reader,
	size int64,
	contentType string,
) (*service.StoredImage, error) {
	info, err := s.client.PutObject(ctx, s.bucket, objectKey, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upload object %s", objectKey)
	}

	return &service.StoredImage{
		ObjectKey:   objectKey,
		URL:         fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectKey),
		ContentType: contentType,
		Size:        info.Size,
	}, nil
}

type disabledStore struct{}

func (disabledStore) Put(context.Context, string, io.Reader, int64, string) (*service.StoredImage, error) {
	return nil, domainerrors.ErrMediaStorageDisabled
}
