package payment

import (
	"errors"
	"time"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is an append-only ledger entry: one deposit attached to one pay
// call and what it did to the parcel's balance.
type Payment struct {
	id        kernel.UUID
	parcelID  kernel.ParcelID
	deposit   kernel.Deposit
	applied   kernel.Charge
	remaining kernel.Charge
	createdAt time.Time

	isConstructed bool
}

// NewPayment records a deposit against a parcel with the outcome the parcel
// reported for it.
func NewPayment(parcelID kernel.ParcelID, deposit kernel.Deposit, outcome parcel.PaymentOutcome, createdAt time.Time) (*Payment, error) {
	return RestorePayment(kernel.NewUUID(), parcelID, deposit, outcome.Applied, outcome.Remaining, createdAt)
}

// RestorePayment reconstructs a ledger entry from persistent storage.
func RestorePayment(
	id kernel.UUID,
	parcelID kernel.ParcelID,
	deposit kernel.Deposit,
	applied, remaining kernel.Charge,
	createdAt time.Time,
) (*Payment, error) {
	var createdAtErr error
	if createdAt.IsZero() {
		createdAtErr = errs.NewValueIsRequiredError("created at")
	}

	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		deposit.Validate(),
		createdAtErr,
	); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		parcelID:      parcelID,
		deposit:       deposit,
		applied:       applied,
		remaining:     remaining,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) ParcelID() kernel.ParcelID {
	return p.parcelID
}

func (p *Payment) Deposit() kernel.Deposit {
	return p.deposit
}

// Applied is the part of the deposit, in charge units, the balance absorbed.
func (p *Payment) Applied() kernel.Charge {
	return p.applied
}

// Remaining is the balance right after this payment.
func (p *Payment) Remaining() kernel.Charge {
	return p.remaining
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}
