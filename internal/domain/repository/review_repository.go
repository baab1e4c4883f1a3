package repository

import (
	"context"

	"canteen/internal/domain/entity"
)

// ReviewRepository defines the operations for review persistence.
// Listed reviews carry their resolved user, canteen and dish, newest first.
type ReviewRepository interface {
	// Create inserts the review as given and assigns its generated id.
	Create(ctx context.Context, review *entity.Review) error

	FindByCanteenID(ctx context.Context, canteenID string) ([]*entity.Review, error)
	FindByDishID(ctx context.Context, dishID string) ([]*entity.Review, error)

	// Summarize aggregates the ratings of every review pointing at the target.
	// A target without reviews yields a zero summary.
	Summarize(ctx context.Context, target entity.RatingTarget, id string) (*entity.RatingSummary, error)
}
