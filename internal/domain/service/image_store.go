package service

import (
	"context"
	"io"
)

// StoredImage describes an uploaded image.
type StoredImage struct {
	ObjectKey   string `json:"objectKey"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// ImageStore persists images in object storage.
type ImageStore interface {
	// Put stores the content under objectKey and returns its public location.
	Put(ctx context.Context, objectKey string, content io.Reader, size int64, contentType string) (*StoredImage, error)
}
