package commands

import (
	"context"
	"time"
)

// RejectLoadingTransactionCommandHandler releases every bundle stamped by a
// pending transaction and deletes it. Both happen in one unit of work.
type RejectLoadingTransactionCommandHandler struct {
	uowFactory LoadingUoWFactory
}

func NewRejectLoadingTransactionCommandHandler(uowFactory LoadingUoWFactory) RejectLoadingTransactionCommandHandler {
	return RejectLoadingTransactionCommandHandler{uowFactory: uowFactory}
}

func (h RejectLoadingTransactionCommandHandler) Handle(ctx context.Context, command RejectLoadingTransactionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	category, err := uow.SizeCategoryRepository().GetByName(ctx, command.CategoryName())
	if err != nil {
		return err
	}

	tx, err := lockTransaction(ctx, uow, category, command.LoadingID())
	if err != nil {
		return err
	}
	if err = tx.EnsureRejectable(); err != nil {
		return err
	}

	bundles, err := uow.BundleRepository().GetByLoadingForUpdate(ctx, tx.ID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, b := range bundles {
		b.Release(command.Actor(), now)
		if err = uow.BundleRepository().Update(ctx, b); err != nil {
			return err
		}
	}

	if err = uow.LoadingRepository().Delete(ctx, category.ID(), tx.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
