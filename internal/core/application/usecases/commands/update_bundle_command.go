package commands

import (
	"errors"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/guard"
)

var ErrUpdateBundleCommandIsNotConstructed = errors.New(
	"UpdateBundleCommand must be created via NewUpdateBundleCommand constructor",
)

// UpdateBundleCommand changes qty and serial range of an unconsumed bundle.
type UpdateBundleCommand struct { //nolint:recvcheck //using for validation
	bundleID int64
	qty      int
	serial   kernel.SerialRange
	actor    string

	guard guard.ConstructorGuard
}

func NewUpdateBundleCommand(bundleID int64, qty, startingNo, endingNo int, actor string) (UpdateBundleCommand, error) {
	cmd := UpdateBundleCommand{
		qty:   qty,
		guard: guard.NewConstructorGuard(),
	}

	serial, serialErr := kernel.NewSerialRange(startingNo, endingNo)
	if err := errors.Join(
		setPositiveID(&cmd.bundleID, "bundleId", bundleID),
		serialErr,
		setRequired(&cmd.actor, "actor", actor),
	); err != nil {
		return UpdateBundleCommand{}, err
	}
	cmd.serial = serial

	return cmd, nil
}

func (c UpdateBundleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBundleCommandIsNotConstructed)
}

func (c UpdateBundleCommand) BundleID() int64            { return c.bundleID }
func (c UpdateBundleCommand) Qty() int                   { return c.qty }
func (c UpdateBundleCommand) Serial() kernel.SerialRange { return c.serial }
func (c UpdateBundleCommand) Actor() string              { return c.actor }
