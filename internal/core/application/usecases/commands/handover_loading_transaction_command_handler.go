package commands

import (
	"context"
	"time"

	"garment/internal/core/domain/model/loading"
	"garment/internal/core/domain/services"
)

// HandoverLoadingTransactionCommandHandler records the handover of an approved
// loading to the receiving employee.
type HandoverLoadingTransactionCommandHandler struct {
	uowFactory LoadingUoWFactory
	gate       services.LoadingGate
}

// NewHandoverLoadingTransactionCommandHandler returns a handler that opens one unit of work per command.
func NewHandoverLoadingTransactionCommandHandler(uowFactory LoadingUoWFactory) HandoverLoadingTransactionCommandHandler {
	return HandoverLoadingTransactionCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewLoadingGate(),
	}
}

// Handle locks the transaction, checks the recipient against the gate and
// stamps the handover time.
func (h HandoverLoadingTransactionCommandHandler) Handle(
	ctx context.Context,
	command HandoverLoadingTransactionCommand,
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

	recipient, err := uow.EmployeeRepository().Get(ctx, command.HandoverID())
	if err != nil {
		return nil, err
	}

	tx, err := lockTransaction(ctx, uow, category, command.LoadingID())
	if err != nil {
		return nil, err
	}

	// A style change needs a more senior recipient.
	if err = h.gate.AuthorizeHandover(recipient, tx.IsStyleChange(command.VariantStyleID())); err != nil {
		return nil, err
	}

	if err = tx.Handover(recipient.EmpID(), command.VariantStyleID(), time.Now().UTC()); err != nil {
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
