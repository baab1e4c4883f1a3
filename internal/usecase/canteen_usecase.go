package usecase

import (
	"context"

	"canteen/internal/domain/entity"
)

// CreateCanteenInput defines the data required to add a canteen.
type CreateCanteenInput struct {
	Name        string
	Location    string
	OpenTime    string
	Image       string
	Description string
}

// CanteenUsecase defines the canteen browsing operations.
type CanteenUsecase interface {
	ListCanteens(ctx context.Context) ([]*entity.Canteen, error)

	// GetCanteen fails with a not-found error naming the id when nothing matches.
	GetCanteen(ctx context.Context, id string) (*entity.Canteen, error)

	SearchCanteens(ctx context.Context, keyword string) ([]*entity.Canteen, error)
	CreateCanteen(ctx context.Context, input *CreateCanteenInput) (*entity.Canteen, error)

	// GetCanteenQRCode renders a PNG QR code linking to an existing canteen.
	GetCanteenQRCode(ctx context.Context, id string) ([]byte, error)

	// ResolveCanteenQRCode looks up the canteen a scanned QR code links to.
	ResolveCanteenQRCode(ctx context.Context, qrData string) (*entity.Canteen, error)
}
