package commands

import (
	"context"
	"fmt"
	"time"

	"garment/internal/core/domain/model/bundle"
	"garment/internal/core/domain/model/cutting"
	"garment/internal/core/domain/model/kernel"
	"garment/internal/core/domain/model/loading"
	"garment/internal/core/domain/model/sizecategory"
	"garment/internal/core/domain/services"
	"garment/internal/pkg/errs"
)

// CreateLoadingTransactionCommandHandler inserts a PENDING_APPROVAL transaction
// and stamps every selected bundle with it in the same database transaction.
type CreateLoadingTransactionCommandHandler struct {
	uowFactory LoadingUoWFactory
	gate       services.LoadingGate
}

func NewCreateLoadingTransactionCommandHandler(uowFactory LoadingUoWFactory) CreateLoadingTransactionCommandHandler {
	return CreateLoadingTransactionCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewLoadingGate(),
	}
}

func (h CreateLoadingTransactionCommandHandler) Handle(
	ctx context.Context,
	command CreateLoadingTransactionCommand,
) (*loading.Transaction, error) {
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

	creator, err := uow.EmployeeRepository().Get(ctx, command.EmployeeID())
	if err != nil {
		return nil, err
	}
	if err = h.gate.AuthorizeCreator(creator); err != nil {
		return nil, err
	}

	ord, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}
	category := ord.Category()

	now := time.Now().UTC()
	loadingID := kernel.NewUUID()

	var bundles []*bundle.Bundle
	if ids := command.BundleIDs(); len(ids) > 0 {
		bundles, err = uow.BundleRepository().GetManyForUpdate(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	derived, err := h.stamp(ctx, uow, command, ord.ID(), category, loadingID, bundles, now)
	if err != nil {
		return nil, err
	}

	quantities := command.Quantities()
	if quantities.IsEmpty() {
		quantities = derived
	}
	if err = quantities.ValidateSizes(category.Sizes()); err != nil {
		return nil, err
	}

	tx, err := loading.NewTransaction(
		loadingID,
		ord.ID(),
		ord.StyleID(),
		loading.CategoryRef{ID: category.ID(), Name: category.Name()},
		command.LineNo(),
		creator.EmpID(),
		command.Actor(),
		quantities.Ordered(category.Sizes()),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.LoadingRepository().Add(ctx, tx); err != nil {
		return nil, err
	}

	for _, b := range bundles {
		if err = uow.BundleRepository().Update(ctx, b); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tx, nil
}

// stamp consumes every selected bundle for the loading and returns the final qty per size.
func (h CreateLoadingTransactionCommandHandler) stamp(
	ctx context.Context,
	uow LoadingUoW,
	command CreateLoadingTransactionCommand,
	orderID string,
	category *sizecategory.SizeCategory,
	loadingID kernel.UUID,
	bundles []*bundle.Bundle,
	now time.Time,
) (kernel.SizeQuantities, error) {
	byID := make(map[int64]*bundle.Bundle, len(bundles))
	for _, b := range bundles {
		byID[b.ID()] = b
	}
	entries := make(map[int64]*cutting.Entry)

	var derived kernel.SizeQuantities
	for _, sel := range command.Selections() {
		b, ok := byID[sel.BundleID]
		if !ok {
			return kernel.SizeQuantities{}, errs.NewObjectNotFoundError("bundleId", sel.BundleID)
		}

		entry, ok := entries[b.CuttingID()]
		if !ok {
			var err error
			if entry, err = uow.CuttingRepository().Get(ctx, b.CuttingID()); err != nil {
				return kernel.SizeQuantities{}, err
			}
			entries[b.CuttingID()] = entry
		}
		if entry.OrderID() != orderID {
			return kernel.SizeQuantities{}, errs.NewValueIsInvalidErrorWithCause("bundles",
				fmt.Errorf("bundle %d belongs to order %s, not %s", b.ID(), entry.OrderID(), orderID))
		}

		if !category.HasSize(b.Size()) {
			return kernel.SizeQuantities{}, errs.NewValueIsInvalidErrorWithCause("bundles",
				fmt.Errorf("bundle %d has size %s outside category %s", b.ID(), b.Size(), category.Name()))
		}

		if err := b.Consume(loadingID, category.Name(), sel.MinusQty, sel.Reason, command.Actor(), now); err != nil {
			return kernel.SizeQuantities{}, err
		}

		var err error
		if derived, err = derived.Add(b.Size(), b.FinalQty()); err != nil {
			return kernel.SizeQuantities{}, err
		}
	}
	return derived, nil
}
