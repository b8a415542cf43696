package commands

import (
	"errors"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/errs"
	"garment/internal/pkg/guard"
)

var ErrApproveLoadingTransactionCommandIsNotConstructed = errors.New(
	"ApproveLoadingTransactionCommand must be created via NewApproveLoadingTransactionCommand constructor",
)

type ApproveLoadingTransactionCommand struct { //nolint:recvcheck //using for validation
	loadingID    kernel.UUID
	categoryName string
	approverID   string
	actor        string

	guard guard.ConstructorGuard
}

func NewApproveLoadingTransactionCommand(
	loadingID kernel.UUID,
	categoryName string,
	approverID string,
	actor string,
) (ApproveLoadingTransactionCommand, error) {
	cmd := ApproveLoadingTransactionCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setLoadingID(&cmd.loadingID, loadingID),
		setRequired(&cmd.categoryName, "sizeCategory", categoryName),
		setRequired(&cmd.approverID, "approverId", approverID),
		setRequired(&cmd.actor, "actor", actor),
	); err != nil {
		return ApproveLoadingTransactionCommand{}, err
	}
	return cmd, nil
}

func (c ApproveLoadingTransactionCommand) Validate() error {
	return c.guard.Validate(ErrApproveLoadingTransactionCommandIsNotConstructed)
}

func (c ApproveLoadingTransactionCommand) LoadingID() kernel.UUID { return c.loadingID }
func (c ApproveLoadingTransactionCommand) CategoryName() string   { return c.categoryName }
func (c ApproveLoadingTransactionCommand) ApproverID() string     { return c.approverID }
func (c ApproveLoadingTransactionCommand) Actor() string          { return c.actor }

func setLoadingID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("loadingId")
	}
	*dst = id
	return nil
}
