// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// canteenService implements the CanteenUsecase interface.
type canteenService struct {
	canteenRepo repository.CanteenRepository
	qrCodeSvc   service.QRCodeService
	logger      *slog.Logger
}

// CanteenServiceParams holds dependencies for CanteenService, injected by Fx.
type CanteenServiceParams struct {
	fx.In

	CanteenRepo repository.CanteenRepository
	QRCodeSvc   service.QRCodeService
	Logger      *slog.Logger
}

// NewCanteenService is the constructor for canteenService.
func NewCanteenService(params CanteenServiceParams) usecase.CanteenUsecase {
	return &canteenService{
		canteenRepo: params.CanteenRepo,
		qrCodeSvc:   params.QRCodeSvc,
		logger:      params.Logger,
	}
}

func (srv *canteenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCanteens returns every canteen.
func (srv *canteenService) ListCanteens(ctx context.Context) ([]*entity.Canteen, error) {
	canteens, err := srv.canteenRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list canteens")
	}

	return canteens, nil
}

// GetCanteen returns the canteen or a not-found error naming the id.
func (srv *canteenService) GetCanteen(ctx context.Context, id string) (*entity.Canteen, error) {
	canteen, err := srv.canteenRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCanteenNotFound) {
		return nil, domainerrors.NewResourceNotFoundError(domainerrors.ResourceCanteen, id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get canteen")
	}

	return canteen, nil
}

// SearchCanteens matches keyword against canteen names, ignoring case.
func (srv *canteenService) SearchCanteens(ctx context.Context, keyword string) ([]*entity.Canteen, error) {
	canteens, err := srv.canteenRepo.SearchByName(ctx, keyword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search canteens")
	}

	return canteens, nil
}

// CreateCanteen stores a new canteen.
func (srv *canteenService) CreateCanteen(ctx context.Context, input *usecase.CreateCanteenInput) (*entity.Canteen, error) {
	canteen := &entity.Canteen{
		Name:        input.Name,
		Location:    input.Location,
		OpenTime:    input.OpenTime,
		Image:       input.Image,
		Description: input.Description,
	}

	if err := srv.canteenRepo.Create(ctx, canteen); err != nil {
		return nil, errors.Wrap(err, "failed to create canteen")
	}

	srv.log(ctx).Info("Canteen created",
		slog.String("canteen_id", canteen.ID),
		slog.String("name", canteen.Name),
	)

	return canteen, nil
}

// GetCanteenQRCode renders the QR code of an existing canteen.
func (srv *canteenService) GetCanteenQRCode(ctx context.Context, id string) ([]byte, error) {
	canteen, err := srv.GetCanteen(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeSvc.GenerateCanteenQR(canteen.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate canteen QR code")
	}

	return png, nil
}

// ResolveCanteenQRCode maps scanned QR content back to its canteen.
func (srv *canteenService) ResolveCanteenQRCode(ctx context.Context, qrData string) (*entity.Canteen, error) {
	canteenID, err := srv.qrCodeSvc.ParseCanteenQR(qrData)
	if err != nil {
		srv.log(ctx).Debug("Rejected canteen QR code", slog.String("error", err.Error()))

		return nil, domainerrors.ErrValidationFailed.WithDetails("data is not a canteen QR code")
	}

	return srv.GetCanteen(ctx, canteenID)
}
