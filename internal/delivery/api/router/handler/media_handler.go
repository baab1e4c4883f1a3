package handler

import (
	"log/slog"

	"canteen/internal/delivery/api/response"
	deliverycontext "canteen/internal/delivery/context"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const imageFormField = "file"

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler serves image uploads.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// UploadImage stores the multipart "file" field and returns its public URL.
func (h *MediaHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(imageFormField + " is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
				Warn("Failed to close uploaded file", slog.Any("error", closeErr))
		}
	}()

	image, err := h.mediaUC.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, image)
}
