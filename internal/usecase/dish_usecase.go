package usecase

import (
	"context"

	"canteen/internal/domain/entity"
)

// CreateDishInput defines the data required to add a dish to a canteen.
type CreateDishInput struct {
	Name      string
	Image     string
	Price     float64
	Tags      []string
	CanteenID string
}

// DishUsecase defines the dish browsing operations.
type DishUsecase interface {
	ListDishes(ctx context.Context) ([]*entity.Dish, error)
	GetDish(ctx context.Context, id string) (*entity.Dish, error)

	// ListDishesByCanteen fails with not-found when the canteen does not exist.
	ListDishesByCanteen(ctx context.Context, canteenID string) ([]*entity.Dish, error)

	SearchDishes(ctx context.Context, keyword string) ([]*entity.Dish, error)
	CreateDish(ctx context.Context, input *CreateDishInput) (*entity.Dish, error)
}
