package commands

import (
	"errors"
	"strings"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/guard"
)

var ErrHandoverLoadingTransactionCommandIsNotConstructed = errors.New(
	"HandoverLoadingTransactionCommand must be created via NewHandoverLoadingTransactionCommand constructor",
)

// HandoverLoadingTransactionCommand completes an approved loading at the line.
// variantStyleID is optional; empty means the order's own style.
type HandoverLoadingTransactionCommand struct { //nolint:recvcheck //using for validation
	loadingID      kernel.UUID
	categoryName   string
	handoverID     string
	variantStyleID string
	actor          string

	guard guard.ConstructorGuard
}

func NewHandoverLoadingTransactionCommand(
	loadingID kernel.UUID,
	categoryName string,
	handoverID string,
	variantStyleID string,
	actor string,
) (HandoverLoadingTransactionCommand, error) {
	cmd := HandoverLoadingTransactionCommand{
		variantStyleID: strings.TrimSpace(variantStyleID),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setLoadingID(&cmd.loadingID, loadingID),
		setRequired(&cmd.categoryName, "sizeCategory", categoryName),
		setRequired(&cmd.handoverID, "handoverId", handoverID),
		setRequired(&cmd.actor, "actor", actor),
	); err != nil {
		return HandoverLoadingTransactionCommand{}, err
	}
	return cmd, nil
}

func (c HandoverLoadingTransactionCommand) Validate() error {
	return c.guard.Validate(ErrHandoverLoadingTransactionCommandIsNotConstructed)
}

func (c HandoverLoadingTransactionCommand) LoadingID() kernel.UUID { return c.loadingID }
func (c HandoverLoadingTransactionCommand) CategoryName() string   { return c.categoryName }
func (c HandoverLoadingTransactionCommand) HandoverID() string     { return c.handoverID }
func (c HandoverLoadingTransactionCommand) VariantStyleID() string { return c.variantStyleID }
func (c HandoverLoadingTransactionCommand) Actor() string          { return c.actor }
