// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodaid/internal/delivery/context"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/repository"
	"foodaid/internal/errors"
)

// unitOfWork runs core operations either inside a transaction (writes) or
// against the plain repositories (reads), and hides unexpected faults
// behind a stable internal error.
type unitOfWork struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	logger    *slog.Logger
}

func newUnitOfWork(txManager repository.TransactionManager, repos repository.RepositoryFactory, logger *slog.Logger) *unitOfWork {
	if logger == nil {
		logger = slog.Default()
	}

	return &unitOfWork{
		txManager: txManager,
		repos:     repos,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (u *unitOfWork) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, u.logger)
}

// write runs fn in a transaction. Every partial write is rolled back when fn fails.
func (u *unitOfWork) write(ctx context.Context, operation string, fn func(uow repository.RepositoryFactory) error) error {
	return u.surface(ctx, operation, u.txManager.Execute(ctx, fn), domainerrors.ErrTransactionFailed)
}

// read runs fn outside of a transaction.
func (u *unitOfWork) read(ctx context.Context, operation string, fn func(uow repository.RepositoryFactory) error) error {
	return u.surface(ctx, operation, fn(u.repos), domainerrors.ErrInternalError)
}

// surface passes classified errors through and replaces anything else with fallback.
func (u *unitOfWork) surface(ctx context.Context, operation string, err error, fallback *domainerrors.BaseError) error {
	if err == nil {
		return nil
	}
	if domainerrors.KindOf(err) != domainerrors.KindInternal || errors.Is(err, domainerrors.ErrTrackingNumberExhausted) {
		return err
	}

	u.log(ctx).ErrorContext(ctx, "unit of work failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)

	return fallback.WithDetails(operation)
}
