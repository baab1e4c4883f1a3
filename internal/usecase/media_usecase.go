package usecase

import (
	"context"
	"io"

	"canteen/internal/domain/service"
)

// UploadImageInput describes an image received from a client.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.ReadSeeker
}

// MediaUsecase handles image uploads.
type MediaUsecase interface {
	UploadImage(ctx context.Context, input *UploadImageInput) (*service.StoredImage, error)
}
