package handler

import (
	"log/slog"

	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/response"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for posting a review.
// Rating is stored as given.
type CreateReviewRequest struct {
	Content   string `json:"content" validate:"max=2000"`
	Rating    int    `json:"rating"`
	UserID    string `json:"userId" validate:"omitempty,mongodb"`
	CanteenID string `json:"canteenId" validate:"omitempty,mongodb"`
	DishID    string `json:"dishId" validate:"omitempty,mongodb"`
}

// CreateReview stores a review. An authenticated caller may omit userId.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if req.UserID == "" {
		if userID, ok := middleware.GetUserID(c); ok {
			req.UserID = userID
		}
	}
	if req.UserID == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("userId is required"))
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), &usecase.CreateReviewInput{
		Content:   req.Content,
		Rating:    req.Rating,
		UserID:    req.UserID,
		CanteenID: req.CanteenID,
		DishID:    req.DishID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, review)
}

// ListReviewsByCanteen returns the reviews of a canteen, newest first.
func (h *ReviewHandler) ListReviewsByCanteen(c echo.Context) error {
	reviews, err := h.reviewUC.ListReviewsByCanteen(c.Request().Context(), c.Param("canteenId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, reviews)
}

// ListReviewsByDish returns the reviews of a dish, newest first.
func (h *ReviewHandler) ListReviewsByDish(c echo.Context) error {
	reviews, err := h.reviewUC.ListReviewsByDish(c.Request().Context(), c.Param("dishId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, reviews)
}
