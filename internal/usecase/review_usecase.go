package usecase

import (
	"context"

	"canteen/internal/domain/entity"
)

// CreateReviewInput defines a review as submitted. At most one of
// CanteenID and DishID is expected; neither rule is enforced.
type CreateReviewInput struct {
	Content   string
	Rating    int
	UserID    string
	CanteenID string
	DishID    string
}

// ReviewUsecase defines the review operations.
type ReviewUsecase interface {
	// CreateReview stamps the creation time and stores the review as given.
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)

	ListReviewsByCanteen(ctx context.Context, canteenID string) ([]*entity.Review, error)
	ListReviewsByDish(ctx context.Context, dishID string) ([]*entity.Review, error)
}
