package impl

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"
	"canteen/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const imageObjectPrefix = "images/"

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	store         service.ImageStore
	enabled       bool
	maxUploadSize int64
	logger        *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Store  service.ImageStore
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	srv := &mediaService{
		store:   params.Store,
		enabled: params.Config.Media.Enabled(),
		logger:  params.Logger,
	}
	if srv.enabled {
		srv.maxUploadSize = params.Config.Media.MaxUploadSize
	}

	return srv
}

// UploadImage stores the image under a name derived from its content hash,
// so identical uploads share one object.
func (srv *mediaService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (*service.StoredImage, error) {
	if !srv.enabled {
		return nil, domainerrors.ErrMediaStorageDisabled
	}

	if srv.maxUploadSize > 0 && input.Size > srv.maxUploadSize {
		return nil, domainerrors.ErrMediaTooLarge.WithDetails(
			"limit is " + util.FormatBytes(srv.maxUploadSize) + ", got " + util.FormatBytes(input.Size))
	}

	mediaType, _, err := mime.ParseMediaType(input.ContentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return nil, domainerrors.ErrMediaTypeUnsupported.WithDetails("content type " + input.ContentType)
	}

	checksum, size, err := util.CalculateReaderChecksum(input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if _, err := input.Content.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "failed to rewind upload")
	}

	objectKey := imageObjectPrefix + checksum + imageExtension(input.Filename, mediaType)

	img, err := srv.store.Put(ctx, objectKey, input.Content, size, mediaType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Image uploaded",
		slog.String("object_key", img.ObjectKey),
		slog.String("size", util.FormatBytes(img.Size)),
	)

	return img, nil
}

// imageExtension keeps the client's file extension only when it names the
// same media type as the upload, otherwise it is derived from the media type.
func imageExtension(filename, mediaType string) string {
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		if extType, _, err := mime.ParseMediaType(mime.TypeByExtension(ext)); err == nil && extType == mediaType {
			return ext
		}
	}

	switch mediaType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}

	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ""
}
