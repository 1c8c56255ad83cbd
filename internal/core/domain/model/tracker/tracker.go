package tracker

import (
	"errors"
	"math"
	"strings"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

var (
	// ErrTrackerIsNotConstructed is returned when using a zero-value Tracker.
	ErrTrackerIsNotConstructed = errors.New("Tracker must be created via NewTracker constructor")
	// ErrLocationIsRequired is returned for a blank location.
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
	// ErrAlreadyArrived is returned when moving a tracker whose parcel has arrived.
	ErrAlreadyArrived = errs.NewValueIsInvalidError("tracker has already arrived")
)

// FirstVersion is the version of a tracker created by dispatch.
const FirstVersion uint64 = 1


// Tracker records where a dispatched parcel currently is.
//
// A tracker exists only for dispatched parcels and shares the parcel's
// identifier, so there is at most one tracker per parcel.
//
// Business rules:
//   - Location is free text and never blank
//   - A new tracker has not arrived
//   - Once arrived, the tracker no longer moves
//   - Every move raises the version by one, so readers can order snapshots
//
// Example usage:
//
//	t, err := tracker.NewTracker(parcelID, "nairobi depot")
//	if err != nil {
//	    return err
//	}
//	_ = t.MoveTo("thika", false)
type Tracker struct {
	// parcelID is the identifier of the tracked parcel
	parcelID kernel.ParcelID
	// currentLocation is the last reported location
	currentLocation string
	// hasArrived is set once the parcel reached its destination
	hasArrived bool
	// version counts the states the tracker has been in
	version uint64
	// guard ensures the tracker was properly constructed
	guard guard.ConstructorGuard
}

// NewTracker creates the tracker of a parcel being dispatched at location.
func NewTracker(parcelID kernel.ParcelID, location string) (*Tracker, error) {
	t := &Tracker{
		version: FirstVersion,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setParcelID(parcelID),
		t.setLocation(location),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTracker reconstructs a Tracker from persistent storage.
func RestoreTracker(parcelID kernel.ParcelID, location string, hasArrived bool, version uint64) (*Tracker, error) {
	t, err := NewTracker(parcelID, location)
	if err != nil {
		return nil, err
	}
	if version < FirstVersion {
		return nil, errs.NewValueIsOutOfRangeError("version", version, FirstVersion, uint64(math.MaxUint64))
	}
	t.hasArrived = hasArrived
	t.version = version
	return t, nil
}

func (t *Tracker) Validate() error {
	if t == nil {
		return ErrTrackerIsNotConstructed
	}
	return t.guard.Validate(ErrTrackerIsNotConstructed)
}

func (t *Tracker) ParcelID() kernel.ParcelID {
	return t.parcelID
}

func (t *Tracker) CurrentLocation() string {
	return t.currentLocation
}

func (t *Tracker) HasArrived() bool {
	return t.hasArrived
}

func (t *Tracker) Version() uint64 {
	return t.version
}

// MoveTo reports a new location and whether the parcel has arrived there.
// The tracker is left unchanged on error.
func (t *Tracker) MoveTo(location string, arrived bool) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.hasArrived {
		return ErrAlreadyArrived
	}
	if err := t.setLocation(location); err != nil {
		return err
	}
	t.hasArrived = arrived
	t.version++
	return nil
}

func (t *Tracker) setParcelID(id kernel.ParcelID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.parcelID = id
	return nil
}

func (t *Tracker) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return ErrLocationIsRequired
	}
	t.currentLocation = location
	return nil
}
