package queries

import (
	"errors"
	"time"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

var ErrListPaymentsQueryIsNotConstructed = errors.New(
	"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
)

// ListPaymentsQuery lists a parcel's payment ledger.
type ListPaymentsQuery struct { //nolint:recvcheck //using for validation
	parcelID kernel.ParcelID
	guard    guard.ConstructorGuard
}

func NewListPaymentsQuery(parcelID kernel.ParcelID) (ListPaymentsQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return ListPaymentsQuery{}, err
	}
	return ListPaymentsQuery{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

func (q ListPaymentsQuery) ParcelID() kernel.ParcelID {
	return q.parcelID
}

// ListPaymentsQueryResponse is one ledger line. Deposit is a base-10 amount
// of native units since it does not fit 64 bits.
type ListPaymentsQueryResponse struct {
	ID        kernel.UUID
	Deposit   string
	Applied   uint64
	Remaining uint64
	CreatedAt time.Time
}
