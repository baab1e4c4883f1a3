package impl

import (
	"context"
	"log/slog"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dishService implements the DishUsecase interface.
type dishService struct {
	dishRepo    repository.DishRepository
	canteenRepo repository.CanteenRepository
	logger      *slog.Logger
}

// DishServiceParams holds dependencies for DishService, injected by Fx.
type DishServiceParams struct {
	fx.In

	DishRepo    repository.DishRepository
	CanteenRepo repository.CanteenRepository
	Logger      *slog.Logger
}

// NewDishService is the constructor for dishService.
func NewDishService(params DishServiceParams) usecase.DishUsecase {
	return &dishService{
		dishRepo:    params.DishRepo,
		canteenRepo: params.CanteenRepo,
		logger:      params.Logger,
	}
}

func (srv *dishService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *dishService) ListDishes(ctx context.Context) ([]*entity.Dish, error) {
	dishes, err := srv.dishRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dishes")
	}

	return dishes, nil
}

// GetDish returns the dish or a not-found error naming the id.
func (srv *dishService) GetDish(ctx context.Context, id string) (*entity.Dish, error) {
	dish, err := srv.dishRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrDishNotFound) {
		return nil, domainerrors.NewResourceNotFoundError(domainerrors.ResourceDish, id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dish")
	}

	return dish, nil
}

// ListDishesByCanteen resolves the canteen first, then lists the dishes referencing it.
func (srv *dishService) ListDishesByCanteen(ctx context.Context, canteenID string) ([]*entity.Dish, error) {
	if _, err := srv.findCanteen(ctx, canteenID); err != nil {
		return nil, err
	}

	dishes, err := srv.dishRepo.FindByCanteenID(ctx, canteenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dishes by canteen")
	}

	return dishes, nil
}

func (srv *dishService) SearchDishes(ctx context.Context, keyword string) ([]*entity.Dish, error) {
	dishes, err := srv.dishRepo.SearchByName(ctx, keyword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search dishes")
	}

	return dishes, nil
}

// CreateDish stores a dish under an existing canteen.
func (srv *dishService) CreateDish(ctx context.Context, input *usecase.CreateDishInput) (*entity.Dish, error) {
	canteen, err := srv.findCanteen(ctx, input.CanteenID)
	if err != nil {
		return nil, err
	}

	dish := &entity.Dish{
		Name:    input.Name,
		Image:   input.Image,
		Price:   input.Price,
		Tags:    entity.NormalizeTags(input.Tags),
		Canteen: canteen,
	}

	if err := srv.dishRepo.Create(ctx, dish); err != nil {
		return nil, errors.Wrap(err, "failed to create dish")
	}

	srv.log(ctx).Info("Dish created",
		slog.String("dish_id", dish.ID),
		slog.String("canteen_id", canteen.ID),
	)

	return dish, nil
}

func (srv *dishService) findCanteen(ctx context.Context, canteenID string) (*entity.Canteen, error) {
	canteen, err := srv.canteenRepo.FindByID(ctx, canteenID)
	if errors.Is(err, repository.ErrCanteenNotFound) {
		return nil, domainerrors.NewResourceNotFoundError(domainerrors.ResourceCanteen, canteenID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find canteen")
	}

	return canteen, nil
}
