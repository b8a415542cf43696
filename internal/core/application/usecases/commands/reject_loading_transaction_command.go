package commands

import (
	"errors"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/guard"
)

var ErrRejectLoadingTransactionCommandIsNotConstructed = errors.New(
	"RejectLoadingTransactionCommand must be created via NewRejectLoadingTransactionCommand constructor",
)

type RejectLoadingTransactionCommand struct { //nolint:recvcheck //using for validation
	loadingID    kernel.UUID
	categoryName string
	actor        string

	guard guard.ConstructorGuard
}

func NewRejectLoadingTransactionCommand(
	loadingID kernel.UUID,
	categoryName string,
	actor string,
) (RejectLoadingTransactionCommand, error) {
	cmd := RejectLoadingTransactionCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setLoadingID(&cmd.loadingID, loadingID),
		setRequired(&cmd.categoryName, "sizeCategory", categoryName),
		setRequired(&cmd.actor, "actor", actor),
	); err != nil {
		return RejectLoadingTransactionCommand{}, err
	}
	return cmd, nil
}

func (c RejectLoadingTransactionCommand) Validate() error {
	return c.guard.Validate(ErrRejectLoadingTransactionCommandIsNotConstructed)
}

func (c RejectLoadingTransactionCommand) LoadingID() kernel.UUID { return c.loadingID }
func (c RejectLoadingTransactionCommand) CategoryName() string   { return c.categoryName }
func (c RejectLoadingTransactionCommand) Actor() string          { return c.actor }
