package commands

import (
	"context"
	"time"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/core/domain/model/loading"
	"garment/internal/core/domain/model/sizecategory"
	"garment/internal/core/domain/services"
	"garment/internal/pkg/errs"
)

// ApproveLoadingTransactionCommandHandler moves a pending loading to approved
// once the gate confirms every referenced bundle is still reserved for it.
type ApproveLoadingTransactionCommandHandler struct {
	uowFactory LoadingUoWFactory
	gate       services.LoadingGate
}

// NewApproveLoadingTransactionCommandHandler returns a handler that opens one unit of work per command.
func NewApproveLoadingTransactionCommandHandler(uowFactory LoadingUoWFactory) ApproveLoadingTransactionCommandHandler {
	return ApproveLoadingTransactionCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewLoadingGate(),
	}
}

// Handle authorizes the approver, locks the transaction and persists the approval.
func (h ApproveLoadingTransactionCommandHandler) Handle(
	ctx context.Context,
	command ApproveLoadingTransactionCommand,
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

	category, err := uow.SizeCategoryRepository().GetByName(ctx, command.CategoryName())
	if err != nil {
		return nil, err
	}

	approver, err := uow.EmployeeRepository().Get(ctx, command.ApproverID())
	if err != nil {
		return nil, err
	}
	if err = h.gate.AuthorizeApprover(approver); err != nil {
		return nil, err
	}

	tx, err := lockTransaction(ctx, uow, category, command.LoadingID())
	if err != nil {
		return nil, err
	}

	if err = tx.Approve(approver.EmpID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.LoadingRepository().Update(ctx, tx); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return tx, nil
}

// lockTransaction loads the transaction row-locked within its size-category.
// A transaction recorded under another category name is reported as not found.
func lockTransaction(
	ctx context.Context,
	uow LoadingUoW,
	category *sizecategory.SizeCategory,
	id kernel.UUID,
) (*loading.Transaction, error) {
	tx, err := uow.LoadingRepository().GetForUpdate(ctx, category.ID(), id)
	if err != nil {
		return nil, err
	}
	if !tx.InCategory(category.Name()) {
		return nil, errs.NewObjectNotFoundError("loadingId", id.String())
	}
	return tx, nil
}
