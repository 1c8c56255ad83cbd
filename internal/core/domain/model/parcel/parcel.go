package parcel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not built by
	// NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrPaymentPending is returned when dispatch is attempted while more
	// than the dispatch threshold is still owed.
	ErrPaymentPending = errors.New("payment pending")

	// ErrAlreadyDispatched is returned on a second dispatch of the same parcel.
	ErrAlreadyDispatched = errors.New("parcel already dispatched")
)

// Parcel is the aggregate root of a shipment request: who sends it to whom,
// where it goes and how much delivery charge is still owed.
//
// Invariants:
//   - identifier, sender, receiver, destination and date sent are set
//   - a freshly registered parcel owes a positive charge
//   - Registered parcels owe something, Paid parcels owe nothing
//   - the record is immutable apart from its balance and status
type Parcel struct {
	id kernel.ParcelID

	sender   Contact
	receiver Contact

	// deliveryCharge is the outstanding balance, never below zero
	deliveryCharge kernel.Charge

	destination string
	isFragile   bool

	// dateSent is caller supplied and opaque
	dateSent     string
	dateReceived string
	isReceived   bool

	status Status

	isConstructed bool
}

// NewParcel registers a shipment under id with charge owed.
//
// Example:
//
//	sender, _ := parcel.NewContact("sender", "joe", 123)
//	receiver, _ := parcel.NewContact("receiver", "doe", 456)
//	p, err := parcel.NewParcel(id, sender, receiver, 200, "juja", true, "2022-06-10")
func NewParcel(
	id kernel.ParcelID,
	sender, receiver Contact,
	charge kernel.Charge,
	destination string,
	isFragile bool,
	dateSent string,
) (*Parcel, error) {
	p := &Parcel{
		isFragile:     isFragile,
		status:        Registered,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSender(sender),
		p.setReceiver(receiver),
		p.setCharge(charge),
		p.setDestination(destination),
		p.setDateSent(dateSent),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel rebuilds a parcel from storage. It re-checks every
// invariant except the positive-charge rule, which only applies at
// registration.
func RestoreParcel(
	id kernel.ParcelID,
	sender, receiver Contact,
	charge kernel.Charge,
	destination string,
	isFragile bool,
	dateSent, dateReceived string,
	isReceived bool,
	status Status,
) (*Parcel, error) {
	p := &Parcel{
		deliveryCharge: charge,
		isFragile:      isFragile,
		dateReceived:   dateReceived,
		isReceived:     isReceived,
		status:         status,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSender(sender),
		p.setReceiver(receiver),
		p.setDestination(destination),
		p.setDateSent(dateSent),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := status.validateBalance(charge.IsZero()); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate guards against zero-value parcels.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Parcel) ID() kernel.ParcelID {
	return p.id
}

func (p *Parcel) Sender() Contact {
	return p.sender
}

func (p *Parcel) Receiver() Contact {
	return p.receiver
}

// DeliveryCharge returns the outstanding balance.
func (p *Parcel) DeliveryCharge() kernel.Charge {
	return p.deliveryCharge
}

func (p *Parcel) Destination() string {
	return p.destination
}

func (p *Parcel) IsFragile() bool {
	return p.isFragile
}

func (p *Parcel) DateSent() string {
	return p.dateSent
}

// DateReceived is empty until delivery is recorded.
func (p *Parcel) DateReceived() string {
	return p.dateReceived
}

func (p *Parcel) IsReceived() bool {
	return p.isReceived
}

func (p *Parcel) Status() Status {
	return p.status
}

// Pay reduces the outstanding balance by units, saturating at zero, and
// settles the status. It never dispatches.
func (p *Parcel) Pay(units kernel.Charge) (PaymentOutcome, error) {
	if err := p.Validate(); err != nil {
		return PaymentOutcome{}, err
	}

	remaining := p.deliveryCharge.Sub(units)
	newStatus, err := p.status.SettlePayment(remaining.IsZero())
	if err != nil {
		return PaymentOutcome{}, err
	}

	outcome := PaymentOutcome{
		Applied:   p.deliveryCharge.Paid(units),
		Remaining: remaining,
	}
	p.deliveryCharge = remaining
	p.status = newStatus
	return outcome, nil
}

// ValidateDispatch checks, without side effects, that the parcel may be
// dispatched while at most threshold is owed.
func (p *Parcel) ValidateDispatch(threshold kernel.Charge) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.status.IsDispatched() {
		return ErrAlreadyDispatched
	}
	if p.deliveryCharge.Exceeds(threshold) {
		return fmt.Errorf("%w: parcel %s owes %s, dispatch threshold is %s",
			ErrPaymentPending, p.id, p.deliveryCharge, threshold)
	}
	return nil
}

// Dispatch marks the parcel as dispatched. The parcel is left untouched
// when ValidateDispatch fails.
func (p *Parcel) Dispatch(threshold kernel.Charge) error {
	if err := p.ValidateDispatch(threshold); err != nil {
		return err
	}

	newStatus, err := p.status.Dispatch()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Parcel) setID(id kernel.ParcelID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setSender(c Contact) error {
	if err := c.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sender", err)
	}
	p.sender = c
	return nil
}

func (p *Parcel) setReceiver(c Contact) error {
	if err := c.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiver", err)
	}
	p.receiver = c
	return nil
}

func (p *Parcel) setCharge(charge kernel.Charge) error {
	if charge.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("delivery charge is invalid", fmt.Errorf("%s is not greater than 0", charge))
	}
	p.deliveryCharge = charge
	return nil
}

func (p *Parcel) setDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	p.destination = destination
	return nil
}

func (p *Parcel) setDateSent(dateSent string) error {
	if strings.TrimSpace(dateSent) == "" {
		return errs.NewValueIsRequiredError("date sent")
	}
	p.dateSent = dateSent
	return nil
}
