package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrUnknownRatingTarget is returned for a target other than canteen or dish.
var ErrUnknownRatingTarget = errors.New("unknown rating target")

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	reviewRepo  repository.ReviewRepository
	canteenRepo repository.CanteenRepository
	dishRepo    repository.DishRepository
	logger      *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	CanteenRepo repository.CanteenRepository
	DishRepo    repository.DishRepository
	Logger      *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		reviewRepo:  params.ReviewRepo,
		canteenRepo: params.CanteenRepo,
		dishRepo:    params.DishRepo,
		logger:      params.Logger,
	}
}

// RefreshSummary aggregates the target's reviews and stores the result on the target.
// The average is rounded to two decimals.
func (srv *ratingService) RefreshSummary(
	ctx context.Context,
	target entity.RatingTarget,
	id string,
) (*entity.RatingSummary, error) {
	summary, err := srv.reviewRepo.Summarize(ctx, target, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to summarize %s ratings", target)
	}
	summary.Average = math.Round(summary.Average*100) / 100

	switch target {
	case entity.RatingTargetCanteen:
		err = srv.canteenRepo.UpdateRating(ctx, id, summary)
		if errors.Is(err, repository.ErrCanteenNotFound) {
			return nil, domainerrors.NewResourceNotFoundError(domainerrors.ResourceCanteen, id)
		}
	case entity.RatingTargetDish:
		err = srv.dishRepo.UpdateRating(ctx, id, summary)
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.NewResourceNotFoundError(domainerrors.ResourceDish, id)
		}
	default:
		return nil, errors.Wrapf(ErrUnknownRatingTarget, "target %q", target)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store %s rating", target)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Rating summary refreshed",
		slog.String("target", string(target)),
		slog.String("id", id),
		slog.Float64("average", summary.Average),
		slog.Int("count", summary.Count),
	)

	return summary, nil
}
