package parcel

import "github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"

// PaymentOutcome reports what a payment did to a parcel's balance.
type PaymentOutcome struct {
	// Applied is the part of the payment absorbed by the balance; anything
	// above the balance is not credited.
	Applied   kernel.Charge
	Remaining kernel.Charge
}

// ReadyForDispatch reports whether nothing is owed any more.
func (o PaymentOutcome) ReadyForDispatch() bool {
	return o.Remaining.IsZero()
}
