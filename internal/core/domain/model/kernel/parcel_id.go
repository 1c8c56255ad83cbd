package kernel

import (
	"math"
	"strconv"

	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

// FirstParcelID is the first identifier a fresh registry hands out.
const FirstParcelID uint64 = 1

// ErrParcelIDIsNotConstructed is returned when validating a zero-value ParcelID.
var ErrParcelIDIsNotConstructed = errs.NewValueIsRequiredError("parcel id must be created via NewParcelID")

// ParcelID identifies a parcel and, once dispatched, its tracker.
// Identifiers are positive, issued in strictly increasing order and never reused.
//
// Example:
//
//	id, err := kernel.NewParcelID(1)
//	if err != nil {
//	    return err
//	}
//	next := id.Next() // 2
type ParcelID struct { //nolint:recvcheck //using for validation
	value uint64
	guard guard.ConstructorGuard
}

// NewParcelID wraps a raw identifier. Zero is rejected.
func NewParcelID(value uint64) (ParcelID, error) {
	if value < FirstParcelID {
		return ParcelID{}, errs.NewValueIsOutOfRangeError("parcel id", value, FirstParcelID, uint64(math.MaxUint64))
	}
	return ParcelID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// ParcelIDFromString parses a base-10 identifier.
func ParcelIDFromString(s string) (ParcelID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return ParcelID{}, errs.NewValueIsInvalidErrorWithCause("parcel id", err)
	}
	return NewParcelID(v)
}

// Validate reports whether the id was built through a constructor.
func (id ParcelID) Validate() error {
	return id.guard.Validate(ErrParcelIDIsNotConstructed)
}

func (id ParcelID) Uint64() uint64 {
	return id.value
}

func (id ParcelID) String() string {
	return strconv.FormatUint(id.value, 10)
}

func (id ParcelID) IsEqual(other ParcelID) bool {
	return id.value == other.value
}

// Next returns the identifier that follows id.
func (id ParcelID) Next() ParcelID {
	return ParcelID{value: id.value + 1, guard: guard.NewConstructorGuard()}
}
