// Package storage hosts item photos on a portable blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"expitrack/config"
	"expitrack/internal/domain/lifecycle"
	"expitrack/internal/domain/service"
	"expitrack/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket schemes we support.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobStorage implements service.ImageStorage on a gocloud.dev bucket.
type blobStorage struct {
	bucket    *blob.Bucket
	urlPrefix string
	folder    string
}

// NewBlobStorage opens the configured bucket and wires its lifecycle.
func NewBlobStorage(params Params) (service.ImageStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	folder := params.Config.Storage.Folder
	if folder == "" {
		folder = "expiry-tracker"
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:    bucket,
		urlPrefix: strings.TrimSuffix(params.Config.Storage.URLPrefix, "/"),
		folder:    folder,
	}, nil
}

// Upload stores the image under the given key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	fullKey := s.folder + "/" + key

	writer, err := s.bucket.NewWriter(ctx, fullKey, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize blob")
	}

	return s.urlPrefix + "/" + fullKey, nil
}

// Delete removes a previously uploaded image by its public URL.
func (s *blobStorage) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFromURL(url)
	if !ok {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		exists, existsErr := s.bucket.Exists(ctx, key)
		if existsErr == nil && !exists {
			// Already gone.
			return nil
		}

		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}

func (s *blobStorage) keyFromURL(url string) (string, bool) {
	if s.urlPrefix == "" || !strings.HasPrefix(url, s.urlPrefix+"/") {
		return "", false
	}

	return strings.TrimPrefix(url, s.urlPrefix+"/"), true
}
