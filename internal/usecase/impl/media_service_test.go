package impl

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"testing"

	"canteen/config"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/service"
	mockSvc "canteen/internal/mocks/service"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMediaService(t *testing.T, media *config.MediaConfig) (usecase.MediaUsecase, *mockSvc.MockImageStore) {
	store := mockSvc.NewMockImageStore(t)

	svc := NewMediaService(MediaServiceParams{
		Store:  store,
		Config: &config.Config{Media: media},
		Logger: newDiscardLogger(),
	})

	return svc, store
}

func enabledMedia() *config.MediaConfig {
	return &config.MediaConfig{Endpoint: "localhost:9000", Bucket: "canteen-images", MaxUploadSize: 1024}
}

func TestMediaService_UploadImage_Success(t *testing.T) {
	svc, store := createTestMediaService(t, enabledMedia())
	ctx := context.Background()
	content := []byte("fake png bytes")
	sum := sha256.Sum256(content)
	expectedKey := "images/" + hex.EncodeToString(sum[:]) + ".png"

	store.EXPECT().
		Put(ctx, expectedKey, mock.Anything, int64(len(content)), "image/png").
		RunAndReturn(func(_ context.Context, key string, r io.Reader, size int64, contentType string) (*service.StoredImage, error) {
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, content, got)

			return &service.StoredImage{ObjectKey: key, URL: "http://cdn/" + key, ContentType: contentType, Size: size}, nil
		})

	img, err := svc.UploadImage(ctx, &usecase.UploadImageInput{
		Filename:    "Noodles.PNG",
		ContentType: "image/png",
		Size:        int64(len(content)),
		Content:     bytes.NewReader(content),
	})

	require.NoError(t, err)
	assert.Equal(t, expectedKey, img.ObjectKey)
	assert.Equal(t, "http://cdn/"+expectedKey, img.URL)
}

func TestMediaService_UploadImage_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		media    *config.MediaConfig
		input    *usecase.UploadImageInput
		wantCode string
	}{
		{
			name:     "storage disabled",
			media:    nil,
			input:    &usecase.UploadImageInput{ContentType: "image/png", Content: bytes.NewReader(nil)},
			wantCode: "MEDIA_STORAGE_DISABLED",
		},
		{
			name:     "too large",
			media:    enabledMedia(),
			input:    &usecase.UploadImageInput{ContentType: "image/png", Size: 4096, Content: bytes.NewReader(nil)},
			wantCode: "MEDIA_TOO_LARGE",
		},
		{
			name:     "not an image",
			media:    enabledMedia(),
			input:    &usecase.UploadImageInput{ContentType: "application/pdf", Size: 10, Content: bytes.NewReader(nil)},
			wantCode: "MEDIA_TYPE_UNSUPPORTED",
		},
		{
			name:     "unparseable content type",
			media:    enabledMedia(),
			input:    &usecase.UploadImageInput{ContentType: ";;", Size: 10, Content: bytes.NewReader(nil)},
			wantCode: "MEDIA_TYPE_UNSUPPORTED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestMediaService(t, tt.media)

			_, err := svc.UploadImage(context.Background(), tt.input)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
		})
	}
}

func TestMediaService_UploadImage_IgnoresMismatchedExtension(t *testing.T) {
	svc, store := createTestMediaService(t, enabledMedia())
	ctx := context.Background()
	content := []byte("<script>alert(1)</script>")
	sum := sha256.Sum256(content)
	expectedKey := "images/" + hex.EncodeToString(sum[:]) + ".png"

	store.EXPECT().
		Put(ctx, expectedKey, mock.Anything, int64(len(content)), "image/png").
		Return(&service.StoredImage{ObjectKey: expectedKey, ContentType: "image/png"}, nil)

	img, err := svc.UploadImage(ctx, &usecase.UploadImageInput{
		Filename:    "x.html",
		ContentType: "image/png",
		Size:        int64(len(content)),
		Content:     bytes.NewReader(content),
	})

	require.NoError(t, err)
	assert.Equal(t, expectedKey, img.ObjectKey)
}

func TestImageExtension(t *testing.T) {
	tests := []struct {
		filename  string
		mediaType string
		want      string
	}{
		{"photo.JPG", "image/jpeg", ".jpg"},
		{"photo.jpeg", "image/jpeg", ".jpeg"},
		{"", "image/png", ".png"},
		{"x.html", "image/png", ".png"},
		{"photo.png", "image/jpeg", ".jpg"},
		{"archive", "image/gif", ".gif"},
		{"", "image/x-unknown-kind", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename+" as "+tt.mediaType, func(t *testing.T) {
			assert.Equal(t, tt.want, imageExtension(tt.filename, tt.mediaType))
		})
	}
}
