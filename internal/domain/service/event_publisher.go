package service

import (
	"context"
	"time"
)

// ReviewCreatedEvent is published after a review has been stored.
// The rating worker consumes it to refresh rating summaries.
type ReviewCreatedEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	EventID   string    `json:"event_id"`
	ReviewID  string    `json:"review_id"`
	UserID    string    `json:"user_id,omitempty"`
	CanteenID string    `json:"canteen_id,omitempty"`
	DishID    string    `json:"dish_id,omitempty"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReviewCreated publishes a review event for async processing
	PublishReviewCreated(ctx context.Context, event *ReviewCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
