package commands

import (
	"errors"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

var ErrPayParcelCommandIsNotConstructed = errors.New(
	"PayParcelCommand must be created via NewPayParcelCommand constructor",
)

// PayParcelCommand carries a deposit, in native units, towards a parcel's charge.
type PayParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.ParcelID
	deposit  kernel.Deposit

	guard guard.ConstructorGuard
}

func NewPayParcelCommand(parcelID kernel.ParcelID, deposit kernel.Deposit) (PayParcelCommand, error) {
	if err := errors.Join(parcelID.Validate(), deposit.Validate()); err != nil {
		return PayParcelCommand{}, err
	}

	return PayParcelCommand{
		parcelID: parcelID,
		deposit:  deposit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c PayParcelCommand) Validate() error {
	return c.guard.Validate(ErrPayParcelCommandIsNotConstructed)
}

func (c PayParcelCommand) ParcelID() kernel.ParcelID {
	return c.parcelID
}

func (c PayParcelCommand) Deposit() kernel.Deposit {
	return c.deposit
}
