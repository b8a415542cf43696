package commands

import (
	"context"
	"time"

	"garment/internal/core/domain/model/bundle"
	"garment/internal/core/domain/services"
)

// CreateBundleCommandHandler allocates a new bundle.
//
// The serial space is advisory-locked and the cutting entry row-locked before
// the overlap and capacity checks, so two concurrent creates in the same space
// cannot both pass validation against the same snapshot.
type CreateBundleCommandHandler struct {
	uowFactory BundleUoWFactory
	allocator  services.SerialAllocator
}

func NewCreateBundleCommandHandler(uowFactory BundleUoWFactory) CreateBundleCommandHandler {
	return CreateBundleCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewSerialAllocator(),
	}
}

// Handle returns ObjectNotFound for an unknown cutting entry, ValueIsInvalid when
// qty differs from the range length, RangeConflict on overlap and
// CapacityExceeded when the entry has fewer unbundled pieces than qty.
func (h CreateBundleCommandHandler) Handle(ctx context.Context, command CreateBundleCommand) (*bundle.Bundle, error) {
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

	cuttingRepo := uow.CuttingRepository()
	bundleRepo := uow.BundleRepository()

	entry, err := cuttingRepo.GetForUpdate(ctx, command.CuttingID())
	if err != nil {
		return nil, err
	}

	if err = bundleRepo.LockSerialSpace(ctx, entry.Space()); err != nil {
		return nil, err
	}

	bundled, err := bundleRepo.BundledQty(ctx, entry.ID())
	if err != nil {
		return nil, err
	}

	existing, err := bundleRepo.ListInSerialSpace(ctx, entry.Space())
	if err != nil {
		return nil, err
	}

	if err = h.allocator.Check(
		command.Qty(),
		command.Serial(),
		entry.AvailableForBundling(bundled),
		takenRanges(existing, 0),
	); err != nil {
		return nil, err
	}

	b, err := bundle.NewBundle(entry, command.Qty(), command.Serial(), command.Actor(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = bundleRepo.Add(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}

// takenRanges lists the ranges of bundles, skipping excludeID.
func takenRanges(bundles []*bundle.Bundle, excludeID int64) []services.TakenRange {
	taken := make([]services.TakenRange, 0, len(bundles))
	for _, b := range bundles {
		if b.ID() == excludeID {
			continue
		}
		taken = append(taken, services.TakenRange{BundleID: b.ID(), Range: b.Serial()})
	}
	return taken
}
