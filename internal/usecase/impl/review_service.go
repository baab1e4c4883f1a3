package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultPublishTimeout bounds how long review creation waits on the event publisher.
const defaultPublishTimeout = 5 * time.Second

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo     repository.ReviewRepository
	canteenRepo    repository.CanteenRepository
	dishRepo       repository.DishRepository
	publisher      service.EventPublisher
	publishTimeout time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	CanteenRepo repository.CanteenRepository
	DishRepo    repository.DishRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:     params.ReviewRepo,
		canteenRepo:    params.CanteenRepo,
		dishRepo:       params.DishRepo,
		publisher:      params.Publisher,
		publishTimeout: defaultPublishTimeout,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview stores the review with a server-side timestamp and announces it.
// Referenced documents are not checked for existence.
func (srv *reviewService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	review := &entity.Review{
		Content:   input.Content,
		Rating:    input.Rating,
		CreatedAt: srv.now(),
	}
	if input.UserID != "" {
		review.User = &entity.User{ID: input.UserID}
	}
	if input.CanteenID != "" {
		review.Canteen = &entity.Canteen{ID: input.CanteenID}
	}
	if input.DishID != "" {
		review.Dish = &entity.Dish{ID: input.DishID}
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.publishCreated(ctx, review)

	return review, nil
}

// publishCreated emits the ReviewCreated event. Failures are logged only.
func (srv *reviewService) publishCreated(ctx context.Context, review *entity.Review) {
	if srv.publisher == nil {
		return
	}

	event := &service.ReviewCreatedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		ReviewID:  review.ID,
		UserID:    review.UserID(),
		CanteenID: review.CanteenID(),
		DishID:    review.DishID(),
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}

	publishCtx, cancel := context.WithTimeout(ctx, srv.publishTimeout)
	defer cancel()

	if err := srv.publisher.PublishReviewCreated(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish review event",
			slog.String("review_id", review.ID),
			slog.Any("error", err),
		)
	}
}

// ListReviewsByCanteen resolves the canteen first, then lists its reviews.
func (srv *reviewService) ListReviewsByCanteen(ctx context.Context, canteenID string) ([]*entity.Review, error) {
	_, err := srv.canteenRepo.FindByID(ctx, canteenID)
	if errors.Is(err, repository.ErrCanteenNotFound) {
		return nil, domainerrors.NewResourceNotFoundError(domainerrors.ResourceCanteen, canteenID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find canteen")
	}

	reviews, err := srv.reviewRepo.FindByCanteenID(ctx, canteenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by canteen")
	}

	return reviews, nil
}

// ListReviewsByDish resolves the dish first, then lists its reviews.
func (srv *reviewService) ListReviewsByDish(ctx context.Context, dishID string) ([]*entity.Review, error) {
	_, err := srv.dishRepo.FindByID(ctx, dishID)
	if errors.Is(err, repository.ErrDishNotFound) {
		return nil, domainerrors.NewResourceNotFoundError(domainerrors.ResourceDish, dishID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find dish")
	}

	reviews, err := srv.reviewRepo.FindByDishID(ctx, dishID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by dish")
	}

	return reviews, nil
}
