package service

import (
	"context"
	"io"
)

// ImageStorage defines the interface for hosting item photos.
type ImageStorage interface {
	// Upload stores the image under the given key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes a previously uploaded image by its public URL.
	// Deleting an unknown URL is not an error.
	Delete(ctx context.Context, url string) error
}
