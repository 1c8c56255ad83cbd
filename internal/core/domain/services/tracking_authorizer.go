package services

import (
	"errors"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
)

// ErrUnauthorized is returned when a tracking query presents a phone number
// other than the sender's.
var ErrUnauthorized = errors.New("requester is not the sender")

// TrackingAuthorizer guards tracking views: only the sender, identified by
// phone number, may see where a parcel is.
type TrackingAuthorizer struct{}

func NewTrackingAuthorizer() TrackingAuthorizer {
	return TrackingAuthorizer{}
}

// Authorize compares the requester against the sender's phone.
func (TrackingAuthorizer) Authorize(senderPhone, requester kernel.Phone) error {
	if !senderPhone.IsEqual(requester) {
		return ErrUnauthorized
	}
	return nil
}
