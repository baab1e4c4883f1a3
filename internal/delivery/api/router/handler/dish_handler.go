package handler

import (
	"log/slog"

	"canteen/internal/delivery/api/response"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DishHandlerParams holds dependencies for DishHandler, injected by Fx.
type DishHandlerParams struct {
	fx.In

	DishUC usecase.DishUsecase
	Logger *slog.Logger
}

// DishHandler serves the dish endpoints.
type DishHandler struct {
	dishUC usecase.DishUsecase
	logger *slog.Logger
}

// NewDishHandler is the constructor for DishHandler
func NewDishHandler(params DishHandlerParams) *DishHandler {
	return &DishHandler{
		dishUC: params.DishUC,
		logger: params.Logger,
	}
}

// CreateDishRequest represents the request body for adding a dish
type CreateDishRequest struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Image     string   `json:"image"`
	Price     float64  `json:"price" validate:"gte=0"`
	Tags      []string `json:"tags" validate:"max=20,dive,max=50"`
	CanteenID string   `json:"canteenId" validate:"required"`
}

// ListDishes returns every dish with its canteen.
func (h *DishHandler) ListDishes(c echo.Context) error {
	dishes, err := h.dishUC.ListDishes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dishes)
}

// GetDish returns one dish by id.
func (h *DishHandler) GetDish(c echo.Context) error {
	dish, err := h.dishUC.GetDish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dish)
}

// ListDishesByCanteen returns the dishes served by a canteen.
func (h *DishHandler) ListDishesByCanteen(c echo.Context) error {
	dishes, err := h.dishUC.ListDishesByCanteen(c.Request().Context(), c.Param("canteenId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dishes)
}

// SearchDishes matches dish names against the keyword query parameter.
func (h *DishHandler) SearchDishes(c echo.Context) error {
	dishes, err := h.dishUC.SearchDishes(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dishes)
}

// CreateDish adds a dish to an existing canteen.
func (h *DishHandler) CreateDish(c echo.Context) error {
	var req CreateDishRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dish input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	dish, err := h.dishUC.CreateDish(c.Request().Context(), &usecase.CreateDishInput{
		Name:      req.Name,
		Image:     req.Image,
		Price:     req.Price,
		Tags:      req.Tags,
		CanteenID: req.CanteenID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, dish)
}
