// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"canteen/internal/domain/entity"
)

// ErrCanteenNotFound is returned when no canteen matches the given id.
var ErrCanteenNotFound = errors.New("canteen not found")

// CanteenRepository defines the operations for canteen persistence.
type CanteenRepository interface {
	// FindByID retrieves a single canteen. A malformed id behaves like an absent one.
	FindByID(ctx context.Context, id string) (*entity.Canteen, error)

	// FindAll returns every canteen, or an empty slice.
	FindAll(ctx context.Context) ([]*entity.Canteen, error)

	// SearchByName returns canteens whose name contains keyword, ignoring case.
	SearchByName(ctx context.Context, keyword string) ([]*entity.Canteen, error)

	// Create inserts the canteen and assigns its generated id.
	Create(ctx context.Context, canteen *entity.Canteen) error

	// UpdateRating replaces the stored rating summary.
	UpdateRating(ctx context.Context, id string, summary *entity.RatingSummary) error
}
