package entity

// RatingTarget names the kind of document a rating summary belongs to.
type RatingTarget string

const (
	RatingTargetCanteen RatingTarget = "canteen"
	RatingTargetDish    RatingTarget = "dish"
)

// RatingSummary is the aggregate of every review pointing at a canteen or dish.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
