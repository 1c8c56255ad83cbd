package services

import (
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/tracker"
)

// DefaultDispatchThreshold is the largest balance, in charge units, a
// parcel may still owe when it is dispatched.
const DefaultDispatchThreshold kernel.Charge = 10

// DispatchGate decides whether a parcel may leave and creates its tracker.
//
// Business rules:
//   - A parcel that owes more than the threshold stays put (parcel.ErrPaymentPending)
//   - A parcel is dispatched at most once; an existing tracker is never
//     overwritten (parcel.ErrAlreadyDispatched)
//   - Dispatch creates exactly one tracker at the given location, not arrived
type DispatchGate struct {
	threshold kernel.Charge
}

func NewDispatchGate(threshold kernel.Charge) DispatchGate {
	return DispatchGate{threshold: threshold}
}

func (g DispatchGate) Threshold() kernel.Charge {
	return g.threshold
}

// CanDispatch reports whether p would pass the gate right now.
func (g DispatchGate) CanDispatch(p *parcel.Parcel) bool {
	return p.ValidateDispatch(g.threshold) == nil
}

// Dispatch marks p dispatched and returns its new tracker. existing is the
// tracker already stored under p's identifier, or nil. Neither p nor
// existing is modified on error.
func (g DispatchGate) Dispatch(p *parcel.Parcel, existing *tracker.Tracker, location string) (*tracker.Tracker, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, parcel.ErrAlreadyDispatched
	}
	if err := p.ValidateDispatch(g.threshold); err != nil {
		return nil, err
	}

	t, err := tracker.NewTracker(p.ID(), location)
	if err != nil {
		return nil, err
	}

	if err = p.Dispatch(g.threshold); err != nil {
		return nil, err
	}

	return t, nil
}
