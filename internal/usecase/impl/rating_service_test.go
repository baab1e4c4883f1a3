package impl

import (
	"context"
	"testing"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ratingServiceFixtures struct {
	service     usecase.RatingUsecase
	reviewRepo  *mockRepo.MockReviewRepository
	canteenRepo *mockRepo.MockCanteenRepository
	dishRepo    *mockRepo.MockDishRepository
}

func createTestRatingService(t *testing.T) ratingServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	canteenRepo := mockRepo.NewMockCanteenRepository(t)
	dishRepo := mockRepo.NewMockDishRepository(t)

	service := NewRatingService(RatingServiceParams{
		ReviewRepo:  reviewRepo,
		CanteenRepo: canteenRepo,
		DishRepo:    dishRepo,
		Logger:      newDiscardLogger(),
	})

	return ratingServiceFixtures{
		service:     service,
		reviewRepo:  reviewRepo,
		canteenRepo: canteenRepo,
		dishRepo:    dishRepo,
	}
}

func TestRatingService_RefreshSummary_Canteen(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()

	fx.reviewRepo.EXPECT().
		Summarize(ctx, entity.RatingTargetCanteen, testCanteenID).
		Return(&entity.RatingSummary{Average: 11.0 / 3.0, Count: 3}, nil)
	fx.canteenRepo.EXPECT().
		UpdateRating(ctx, testCanteenID, &entity.RatingSummary{Average: 3.67, Count: 3}).
		Return(nil)

	summary, err := fx.service.RefreshSummary(ctx, entity.RatingTargetCanteen, testCanteenID)

	require.NoError(t, err)
	assert.Equal(t, 3.67, summary.Average)
	assert.Equal(t, 3, summary.Count)
}

func TestRatingService_RefreshSummary_Dish(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()

	fx.reviewRepo.EXPECT().
		Summarize(ctx, entity.RatingTargetDish, testDishID).
		Return(&entity.RatingSummary{}, nil)
	fx.dishRepo.EXPECT().
		UpdateRating(ctx, testDishID, &entity.RatingSummary{}).
		Return(nil)

	summary, err := fx.service.RefreshSummary(ctx, entity.RatingTargetDish, testDishID)

	require.NoError(t, err)
	assert.Zero(t, summary.Count)
}

func TestRatingService_RefreshSummary_MissingTarget(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()

	fx.reviewRepo.EXPECT().Summarize(ctx, entity.RatingTargetDish, testDishID).Return(&entity.RatingSummary{Count: 1, Average: 4}, nil)
	fx.dishRepo.EXPECT().UpdateRating(ctx, testDishID, &entity.RatingSummary{Count: 1, Average: 4}).Return(repository.ErrDishNotFound)

	_, err := fx.service.RefreshSummary(ctx, entity.RatingTargetDish, testDishID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestRatingService_RefreshSummary_Failures(t *testing.T) {
	t.Run("aggregation failure", func(t *testing.T) {
		fx := createTestRatingService(t)
		ctx := context.Background()
		storeErr := errors.New("aggregate timed out")

		fx.reviewRepo.EXPECT().Summarize(ctx, entity.RatingTargetCanteen, testCanteenID).Return(nil, storeErr)

		_, err := fx.service.RefreshSummary(ctx, entity.RatingTargetCanteen, testCanteenID)

		assert.True(t, errors.Is(err, storeErr))
	})

	t.Run("unknown target", func(t *testing.T) {
		fx := createTestRatingService(t)
		ctx := context.Background()

		fx.reviewRepo.EXPECT().Summarize(ctx, entity.RatingTarget("user"), "x").Return(&entity.RatingSummary{}, nil)

		_, err := fx.service.RefreshSummary(ctx, entity.RatingTarget("user"), "x")

		assert.True(t, errors.Is(err, ErrUnknownRatingTarget))
	})
}
