package commands

import (
	"errors"
	"fmt"
	"strings"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/errs"
	"garment/internal/pkg/guard"
)

var ErrCreateBundleCommandIsNotConstructed = errors.New(
	"CreateBundleCommand must be created via NewCreateBundleCommand constructor",
)

// CreateBundleCommand requests a new bundle of qty pieces from a cutting entry,
// numbered startingNo..endingNo.
//
// Example:
//
//	cmd, err := NewCreateBundleCommand(cuttingID, 60, 1, 60, actor)
//	if err != nil {
//	    return err
//	}
//	b, err := handler.Handle(ctx, cmd)
type CreateBundleCommand struct { //nolint:recvcheck //using for validation
	cuttingID int64
	qty       int
	serial    kernel.SerialRange
	actor     string

	guard guard.ConstructorGuard
}

func NewCreateBundleCommand(cuttingID int64, qty, startingNo, endingNo int, actor string) (CreateBundleCommand, error) {
	cmd := CreateBundleCommand{
		qty:   qty,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCuttingID(cuttingID),
		cmd.setSerial(startingNo, endingNo),
		cmd.setActor(actor),
	); err != nil {
		return CreateBundleCommand{}, err
	}

	return cmd, nil
}

func (c CreateBundleCommand) Validate() error {
	return c.guard.Validate(ErrCreateBundleCommandIsNotConstructed)
}

func (c CreateBundleCommand) CuttingID() int64           { return c.cuttingID }
func (c CreateBundleCommand) Qty() int                   { return c.qty }
func (c CreateBundleCommand) Serial() kernel.SerialRange { return c.serial }
func (c CreateBundleCommand) Actor() string              { return c.actor }

func (c *CreateBundleCommand) setCuttingID(id int64) error {
	return setPositiveID(&c.cuttingID, "cuttingId", id)
}

func (c *CreateBundleCommand) setSerial(startingNo, endingNo int) error {
	serial, err := kernel.NewSerialRange(startingNo, endingNo)
	if err != nil {
		return err
	}
	c.serial = serial
	return nil
}

func (c *CreateBundleCommand) setActor(actor string) error {
	return setRequired(&c.actor, "actor", actor)
}

func setPositiveID(dst *int64, name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", id))
	}
	*dst = id
	return nil
}

func setRequired(dst *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}
