package queries

import (
	"errors"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves one parcel for operators.
type GetParcelQuery struct { //nolint:recvcheck //using for validation
	parcelID kernel.ParcelID
	guard    guard.ConstructorGuard
}

func NewGetParcelQuery(parcelID kernel.ParcelID) (GetParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, err
	}
	return GetParcelQuery{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

func (q GetParcelQuery) ParcelID() kernel.ParcelID {
	return q.parcelID
}

// GetParcelQueryResponse is the operator view of a parcel.
type GetParcelQueryResponse struct {
	ID             uint64
	SenderName     string
	SenderPhone    uint64
	ReceiverName   string
	ReceiverPhone  uint64
	DeliveryCharge uint64
	Destination    string
	IsFragile      bool
	DateSent       string
	DateReceived   string
	IsReceived     bool
	Status         parcel.Status
}
