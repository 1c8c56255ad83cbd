package commands

import (
	"errors"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

var ErrRegisterParcelCommandIsNotConstructed = errors.New(
	"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
)

// ParcelDetails is the caller-supplied description of a shipment.
type ParcelDetails struct {
	SenderName     string
	SenderPhone    uint64
	ReceiverName   string
	ReceiverPhone  uint64
	DeliveryCharge uint64
	Destination    string
	IsFragile      bool
	DateSent       string
}

// RegisterParcelCommand represents a request to register a new parcel.
// The identifier is not part of the command: the registry allocates it.
//
// Example:
//
//	cmd, err := NewRegisterParcelCommand(ParcelDetails{
//	    SenderName: "joe", SenderPhone: 123,
//	    ReceiverName: "doe", ReceiverPhone: 456,
//	    DeliveryCharge: 200, Destination: "juja",
//	    IsFragile: true, DateSent: "2022-06-10",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	sender      parcel.Contact
	receiver    parcel.Contact
	charge      kernel.Charge
	destination string
	isFragile   bool
	dateSent    string

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand builds the sender and receiver contacts and
// joins their failures. The remaining fields are checked by parcel.NewParcel.
func NewRegisterParcelCommand(d ParcelDetails) (RegisterParcelCommand, error) {
	cmd := RegisterParcelCommand{
		charge:      kernel.Charge(d.DeliveryCharge),
		destination: d.Destination,
		isFragile:   d.IsFragile,
		dateSent:    d.DateSent,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(d.SenderName, d.SenderPhone),
		cmd.setReceiver(d.ReceiverName, d.ReceiverPhone),
	); err != nil {
		return RegisterParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

func (c RegisterParcelCommand) Sender() parcel.Contact {
	return c.sender
}

func (c RegisterParcelCommand) Receiver() parcel.Contact {
	return c.receiver
}

func (c RegisterParcelCommand) DeliveryCharge() kernel.Charge {
	return c.charge
}

func (c RegisterParcelCommand) Destination() string {
	return c.destination
}

func (c RegisterParcelCommand) IsFragile() bool {
	return c.isFragile
}

func (c RegisterParcelCommand) DateSent() string {
	return c.dateSent
}

func (c *RegisterParcelCommand) setSender(name string, phone uint64) error {
	contact, err := parcel.NewContact("sender", name, phone)
	if err != nil {
		return err
	}

	c.sender = contact
	return nil
}

func (c *RegisterParcelCommand) setReceiver(name string, phone uint64) error {
	contact, err := parcel.NewContact("receiver", name, phone)
	if err != nil {
		return err
	}

	c.receiver = contact
	return nil
}
