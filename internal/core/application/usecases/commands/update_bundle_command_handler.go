package commands

import (
	"context"
	"time"

	"garment/internal/core/domain/model/bundle"
	"garment/internal/core/domain/services"
)

// UpdateBundleCommandHandler resizes a bundle. The capacity check gives back the
// bundle's current qty and the overlap check ignores its current range.
type UpdateBundleCommandHandler struct {
	uowFactory BundleUoWFactory
	allocator  services.SerialAllocator
}

func NewUpdateBundleCommandHandler(uowFactory BundleUoWFactory) UpdateBundleCommandHandler {
	return UpdateBundleCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewSerialAllocator(),
	}
}

func (h UpdateBundleCommandHandler) Handle(ctx context.Context, command UpdateBundleCommand) (*bundle.Bundle, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bundleRepo := uow.BundleRepository()

	b, err := bundleRepo.GetForUpdate(ctx, command.BundleID())
	if err != nil {
		return nil, err
	}
	if b.IsConsumed() {
		// Resize reports the lock; fail before taking the space lock.
		return nil, b.Resize(command.Qty(), command.Serial(), command.Actor(), time.Now().UTC())
	}

	if err = bundleRepo.LockSerialSpace(ctx, b.Space()); err != nil {
		return nil, err
	}

	entry, err := uow.CuttingRepository().Get(ctx, b.CuttingID())
	if err != nil {
		return nil, err
	}

	bundled, err := bundleRepo.BundledQty(ctx, entry.ID())
	if err != nil {
		return nil, err
	}

	existing, err := bundleRepo.ListInSerialSpace(ctx, b.Space())
	if err != nil {
		return nil, err
	}

	if err = h.allocator.Check(
		command.Qty(),
		command.Serial(),
		entry.AvailableForBundling(bundled)+b.Qty(),
		takenRanges(existing, b.ID()),
	); err != nil {
		return nil, err
	}

	if err = b.Resize(command.Qty(), command.Serial(), command.Actor(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = bundleRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}
