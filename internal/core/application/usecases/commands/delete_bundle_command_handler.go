package commands

import (
	"context"
)

// DeleteBundleCommandHandler deletes a bundle. Consumed bundles and bundles
// referenced by operation records are Locked.
type DeleteBundleCommandHandler struct {
	uowFactory BundleUoWFactory
}

func NewDeleteBundleCommandHandler(uowFactory BundleUoWFactory) DeleteBundleCommandHandler {
	return DeleteBundleCommandHandler{uowFactory: uowFactory}
}

func (h DeleteBundleCommandHandler) Handle(ctx context.Context, command DeleteBundleCommand) error {
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

	bundleRepo := uow.BundleRepository()

	b, err := bundleRepo.GetForUpdate(ctx, command.BundleID())
	if err != nil {
		return err
	}

	used, err := bundleRepo.IsUsedDownstream(ctx, b.ID())
	if err != nil {
		return err
	}

	if err = b.EnsureDeletable(used); err != nil {
		return err
	}

	if err = bundleRepo.Delete(ctx, b.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
