package commands

import (
	"errors"
	"strings"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

var (
	ErrDispatchParcelCommandIsNotConstructed = errors.New(
		"DispatchParcelCommand must be created via NewDispatchParcelCommand constructor",
	)
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
)

// DispatchParcelCommand asks for a parcel to leave from location.
//
// Example:
//
//	cmd, err := NewDispatchParcelCommand(id, "nairobi depot")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, parcel.ErrPaymentPending) {
//	    // too much is still owed
//	}
type DispatchParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.ParcelID
	location string

	guard guard.ConstructorGuard
}

func NewDispatchParcelCommand(parcelID kernel.ParcelID, location string) (DispatchParcelCommand, error) {
	cmd := DispatchParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setLocation(location),
	); err != nil {
		return DispatchParcelCommand{}, err
	}

	return cmd, nil
}

func (c DispatchParcelCommand) Validate() error {
	return c.guard.Validate(ErrDispatchParcelCommandIsNotConstructed)
}

func (c DispatchParcelCommand) ParcelID() kernel.ParcelID {
	return c.parcelID
}

func (c DispatchParcelCommand) Location() string {
	return c.location
}

func (c *DispatchParcelCommand) setParcelID(parcelID kernel.ParcelID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *DispatchParcelCommand) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return ErrLocationIsRequired
	}

	c.location = location
	return nil
}
