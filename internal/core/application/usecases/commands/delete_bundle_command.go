package commands

import (
	"errors"

	"garment/internal/pkg/guard"
)

var ErrDeleteBundleCommandIsNotConstructed = errors.New(
	"DeleteBundleCommand must be created via NewDeleteBundleCommand constructor",
)

// DeleteBundleCommand removes a bundle that was never consumed nor used downstream.
type DeleteBundleCommand struct {
	bundleID int64
	actor    string

	guard guard.ConstructorGuard
}

func NewDeleteBundleCommand(bundleID int64, actor string) (DeleteBundleCommand, error) {
	cmd := DeleteBundleCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setPositiveID(&cmd.bundleID, "bundleId", bundleID),
		setRequired(&cmd.actor, "actor", actor),
	); err != nil {
		return DeleteBundleCommand{}, err
	}

	return cmd, nil
}

func (c DeleteBundleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBundleCommandIsNotConstructed)
}

func (c DeleteBundleCommand) BundleID() int64 { return c.bundleID }
func (c DeleteBundleCommand) Actor() string   { return c.actor }
