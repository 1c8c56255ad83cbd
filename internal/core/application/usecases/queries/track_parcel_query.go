package queries

import (
	"errors"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery asks where a parcel is, on behalf of the phone number
// that claims to be its sender.
//
// Example:
//
//	query, err := NewTrackParcelQuery(id, 123)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrUnauthorized) {
//	    // not the sender
//	}
type TrackParcelQuery struct { //nolint:recvcheck //using for validation
	parcelID  kernel.ParcelID
	requester kernel.Phone

	guard guard.ConstructorGuard
}

func NewTrackParcelQuery(parcelID kernel.ParcelID, requesterPhone uint64) (TrackParcelQuery, error) {
	requester, phoneErr := kernel.NewPhone(requesterPhone)
	if err := errors.Join(parcelID.Validate(), phoneErr); err != nil {
		return TrackParcelQuery{}, err
	}

	return TrackParcelQuery{
		parcelID:  parcelID,
		requester: requester,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

func (q TrackParcelQuery) ParcelID() kernel.ParcelID {
	return q.parcelID
}

func (q TrackParcelQuery) Requester() kernel.Phone {
	return q.requester
}

// TrackingView is what the sender gets to see.
type TrackingView struct {
	Location   string
	HasArrived bool
}
