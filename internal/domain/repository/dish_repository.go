package repository

import (
	"context"
	"errors"

	"canteen/internal/domain/entity"
)

// ErrDishNotFound is returned when no dish matches the given id.
var ErrDishNotFound = errors.New("dish not found")

// DishRepository defines the operations for dish persistence.
// Returned dishes carry their resolved canteen.
type DishRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Dish, error)
	FindAll(ctx context.Context) ([]*entity.Dish, error)

	// FindByCanteenID returns the dishes whose canteen reference equals canteenID.
	FindByCanteenID(ctx context.Context, canteenID string) ([]*entity.Dish, error)

	// SearchByName returns dishes whose name contains keyword, ignoring case.
	SearchByName(ctx context.Context, keyword string) ([]*entity.Dish, error)

	// Create inserts the dish and assigns its generated id.
	Create(ctx context.Context, dish *entity.Dish) error

	UpdateRating(ctx context.Context, id string, summary *entity.RatingSummary) error
}
