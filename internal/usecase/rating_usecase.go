package usecase

import (
	"context"

	"canteen/internal/domain/entity"
)

// RatingUsecase maintains the rating summaries stored on canteens and dishes.
type RatingUsecase interface {
	// RefreshSummary recomputes the summary of the target from its reviews and stores it.
	RefreshSummary(ctx context.Context, target entity.RatingTarget, id string) (*entity.RatingSummary, error)
}
