package services

import (
	"time"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/payment"
)

// PaymentProcessor applies a deposit to a parcel and produces the ledger
// entry for it.
//
// Business rules:
//   - The deposit converts to charge units at the fixed exchange rate,
//     dropping any remainder below one unit
//   - The balance never goes below zero; the excess is not credited
//   - Paying never dispatches
//
// Example usage:
//
//	processor := services.NewPaymentProcessor()
//	outcome, entry, err := processor.Pay(p, deposit, time.Now())
//	if err != nil {
//	    return err
//	}
//	if outcome.ReadyForDispatch() {
//	    // nothing owed any more
//	}
type PaymentProcessor struct{}

func NewPaymentProcessor() PaymentProcessor {
	return PaymentProcessor{}
}

// Pay mutates p only when every step succeeds.
func (PaymentProcessor) Pay(
	p *parcel.Parcel,
	deposit kernel.Deposit,
	now time.Time,
) (parcel.PaymentOutcome, *payment.Payment, error) {
	if err := p.Validate(); err != nil {
		return parcel.PaymentOutcome{}, nil, err
	}
	if err := deposit.Validate(); err != nil {
		return parcel.PaymentOutcome{}, nil, err
	}

	outcome, err := p.Pay(deposit.ToCharge())
	if err != nil {
		return parcel.PaymentOutcome{}, nil, err
	}

	entry, err := payment.NewPayment(p.ID(), deposit, outcome, now)
	if err != nil {
		return parcel.PaymentOutcome{}, nil, err
	}

	return outcome, entry, nil
}
