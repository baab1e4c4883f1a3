// Package handler contains the HTTP handlers for the API delivery.
package handler

import (
	"log/slog"
	"net/http"

	"canteen/internal/delivery/api/response"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CanteenHandlerParams holds dependencies for CanteenHandler, injected by Fx.
type CanteenHandlerParams struct {
	fx.In

	CanteenUC usecase.CanteenUsecase
	Logger    *slog.Logger
}

// CanteenHandler serves the canteen endpoints.
type CanteenHandler struct {
	canteenUC usecase.CanteenUsecase
	logger    *slog.Logger
}

// NewCanteenHandler is the constructor for CanteenHandler
func NewCanteenHandler(params CanteenHandlerParams) *CanteenHandler {
	return &CanteenHandler{
		canteenUC: params.CanteenUC,
		logger:    params.Logger,
	}
}

// CreateCanteenRequest represents the request body for adding a canteen
type CreateCanteenRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Location    string `json:"location" validate:"max=200"`
	OpenTime    string `json:"openTime" validate:"max=100"`
	Image       string `json:"image"`
	Description string `json:"description" validate:"max=2000"`
}

// ListCanteens returns every canteen.
func (h *CanteenHandler) ListCanteens(c echo.Context) error {
	canteens, err := h.canteenUC.ListCanteens(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, canteens)
}

// GetCanteen returns one canteen by id.
func (h *CanteenHandler) GetCanteen(c echo.Context) error {
	canteen, err := h.canteenUC.GetCanteen(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, canteen)
}

// SearchCanteens matches canteen names against the keyword query parameter.
func (h *CanteenHandler) SearchCanteens(c echo.Context) error {
	canteens, err := h.canteenUC.SearchCanteens(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, canteens)
}

// CreateCanteen adds a canteen.
func (h *CanteenHandler) CreateCanteen(c echo.Context) error {
	var req CreateCanteenRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid canteen input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	canteen, err := h.canteenUC.CreateCanteen(c.Request().Context(), &usecase.CreateCanteenInput{
		Name:        req.Name,
		Location:    req.Location,
		OpenTime:    req.OpenTime,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, canteen)
}

// GetCanteenQRCode renders the canteen link as a PNG QR code.
func (h *CanteenHandler) GetCanteenQRCode(c echo.Context) error {
	png, err := h.canteenUC.GetCanteenQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveCanteenQRCode returns the canteen behind scanned QR content passed as the data query parameter.
func (h *CanteenHandler) ResolveCanteenQRCode(c echo.Context) error {
	canteen, err := h.canteenUC.ResolveCanteenQRCode(c.Request().Context(), c.QueryParam("data"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, canteen)
}
