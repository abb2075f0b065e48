package impl

import (
	"context"
	"log/slog"

	"foodaid/config"
	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/repository"
	"foodaid/internal/domain/requestflow"
	"foodaid/internal/domain/service"
	"foodaid/internal/domain/tracking"
	"foodaid/internal/usecase"

	"go.uber.org/fx"
)

type requestService struct {
	uow    *unitOfWork
	flow   *requestflow.Flow
	qrcode service.QRCodeService
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
	Clock     usecase.Clock `optional:"true"`
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	maxAttempts := 0
	if params.Config != nil {
		maxAttempts = params.Config.Tracking.MaxAttempts
	}

	return &requestService{
		uow:    newUnitOfWork(params.TxManager, params.Repos, params.Logger),
		flow:   requestflow.New(tracking.NewGenerator(maxAttempts), requestflow.Clock(params.Clock)),
		qrcode: params.QRCode,
	}
}

func (srv *requestService) CreateRequest(ctx context.Context, p entity.Principal, input requestflow.CreateInput) (*entity.Request, error) {
	var request *entity.Request
	err := srv.uow.write(ctx, "create request", func(uow repository.RepositoryFactory) error {
		var err error
		request, err = srv.flow.Create(ctx, uow, p, input)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.uow.log(ctx).InfoContext(ctx, "request created",
		slog.Int64("request_id", request.ID),
		slog.String("tracking_number", request.TrackingNumber),
	)

	return request, nil
}

func (srv *requestService) CreateGuestRequest(ctx context.Context, input requestflow.GuestInput) (*entity.Request, error) {
	var request *entity.Request
	err := srv.uow.write(ctx, "create guest request", func(uow repository.RepositoryFactory) error {
		var err error
		request, err = srv.flow.CreateGuest(ctx, uow, input)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.uow.log(ctx).InfoContext(ctx, "guest request created",
		slog.Int64("request_id", request.ID),
		slog.String("tracking_number", request.TrackingNumber),
	)

	return request, nil
}

func (srv *requestService) GetRequest(ctx context.Context, p entity.Principal, id int64) (*entity.Request, error) {
	var request *entity.Request
	err := srv.uow.read(ctx, "get request", func(uow repository.RepositoryFactory) error {
		var err error
		request, err = srv.flow.Get(ctx, uow, p, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (srv *requestService) ListRequests(ctx context.Context, p entity.Principal, filter entity.RequestFilter) ([]*entity.Request, error) {
	var requests []*entity.Request
	err := srv.uow.read(ctx, "list requests", func(uow repository.RepositoryFactory) error {
		var err error
		requests, err = srv.flow.List(ctx, uow, p, filter)

		return err
	})
	if err != nil {
		return nil, err
	}

	return requests, nil
}

func (srv *requestService) UpdateRequest(ctx context.Context, p entity.Principal, id int64, input requestflow.UpdateInput) (*entity.Request, error) {
	var request *entity.Request
	err := srv.uow.write(ctx, "update request", func(uow repository.RepositoryFactory) error {
		var err error
		request, err = srv.flow.Update(ctx, uow, p, id, input)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.uow.log(ctx).InfoContext(ctx, "request updated",
		slog.Int64("request_id", request.ID),
		slog.String("status", request.Status.String()),
	)

	return request, nil
}

func (srv *requestService) TrackRequest(ctx context.Context, trackingNumber string) (*entity.TrackingInfo, error) {
	var info *entity.TrackingInfo
	err := srv.uow.read(ctx, "track request", func(uow repository.RepositoryFactory) error {
		var err error
		info, err = srv.flow.Track(ctx, uow, trackingNumber)

		return err
	})
	if err != nil {
		return nil, err
	}

	return info, nil
}

func (srv *requestService) TrackingQRCode(ctx context.Context, trackingNumber string) ([]byte, error) {
	info, err := srv.TrackRequest(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateTrackingQR(info.TrackingNumber)
	if err != nil {
		srv.uow.log(ctx).ErrorContext(ctx, "failed to render tracking QR code",
			slog.String("tracking_number", info.TrackingNumber),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInternalError.WithDetails("render tracking QR code")
	}

	return png, nil
}
