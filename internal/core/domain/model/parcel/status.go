package parcel

import (
	"fmt"

	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
)

// Status is the lifecycle state of a parcel.
//
//	Registered ──pay (balance > 0)──> Registered
//	Registered ──pay (balance = 0)──> Paid
//	Registered | Paid ──dispatch (balance ≤ threshold)──> Dispatched
//
// Dispatched is terminal.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Registered
	Paid
	Dispatched
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Registered: "Registered",
		Paid:       "Paid",
		Dispatched: "Dispatched",
	}
}

// Validate rejects Unknown and out-of-range values, e.g. ones read from storage.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsDispatched reports whether the parcel has left the registry.
func (s Status) IsDispatched() bool {
	return s == Dispatched
}

// SettlePayment returns the status after a payment left remaining owed.
// Payments never move a parcel out of Dispatched.
func (s Status) SettlePayment(remainingIsZero bool) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == Registered && remainingIsZero {
		return Paid, nil
	}
	return s, nil
}

// Dispatch transitions Registered or Paid to Dispatched.
func (s Status) Dispatch() (Status, error) {
	switch s {
	case Registered, Paid:
		return Dispatched, nil
	case Dispatched:
		return 0, ErrAlreadyDispatched
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}
}

// validateBalance checks that status and outstanding balance agree.
func (s Status) validateBalance(owedIsZero bool) error {
	if s == Registered && owedIsZero {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s parcel cannot have a settled balance", s.String()),
		)
	}
	if s == Paid && !owedIsZero {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s parcel cannot owe a balance", s.String()),
		)
	}
	return nil
}
