// Package servers holds the HTTP contract of api/openapi.yaml in the shape
// oapi-codegen emits for echo: wire types, ServerInterface and a wrapper
// binding path and query parameters. Keep it in step with the document.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// ParcelStatus defines model for Parcel.Status.
type ParcelStatus string

const (
	Registered ParcelStatus = "Registered"
	Paid       ParcelStatus = "Paid"
	Dispatched ParcelStatus = "Dispatched"
)

// Contact defines model for Contact.
type Contact struct {
	Name  string `json:"name"`
	Phone uint64 `json:"phone"`
}

// NewParcel defines model for NewParcel.
type NewParcel struct {
	DateSent       string  `json:"dateSent"`
	DeliveryCharge uint64  `json:"deliveryCharge"`
	Destination    string  `json:"destination"`
	IsFragile      bool    `json:"isFragile,omitempty"`
	Receiver       Contact `json:"receiver"`
	Sender         Contact `json:"sender"`
}

// ParcelCreated defines model for ParcelCreated.
type ParcelCreated struct {
	Id uint64 `json:"id"`
}

// Parcel defines model for Parcel.
type Parcel struct {
	DateReceived   string       `json:"dateReceived,omitempty"`
	DateSent       string       `json:"dateSent"`
	DeliveryCharge uint64       `json:"deliveryCharge"`
	Destination    string       `json:"destination"`
	Id             uint64       `json:"id"`
	IsFragile      bool         `json:"isFragile"`
	IsReceived     bool         `json:"isReceived"`
	Receiver       Contact      `json:"receiver"`
	Sender         Contact      `json:"sender"`
	Status         ParcelStatus `json:"status"`
}

// NewPayment defines model for NewPayment.
type NewPayment struct {
	// Amount Deposit in native units, base 10.
	Amount string `json:"amount"`
}

// PaymentOutcome defines model for PaymentOutcome.
type PaymentOutcome struct {
	Applied          uint64 `json:"applied"`
	ReadyForDispatch bool   `json:"readyForDispatch"`
	Remaining        uint64 `json:"remaining"`
}

// Payment defines model for Payment.
type Payment struct {
	Amount    string             `json:"amount"`
	Applied   uint64             `json:"applied"`
	CreatedAt time.Time          `json:"createdAt"`
	Id        openapi_types.UUID `json:"id"`
	Remaining uint64             `json:"remaining"`
}

// Dispatch defines model for Dispatch.
type Dispatch struct {
	Location string `json:"location"`
}

// LocationUpdate defines model for LocationUpdate.
type LocationUpdate struct {
	HasArrived bool   `json:"hasArrived,omitempty"`
	Location   string `json:"location"`
}

// Tracking defines model for Tracking.
type Tracking struct {
	HasArrived bool   `json:"hasArrived"`
	Location   string `json:"location"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ParcelId defines model for ParcelId.
type ParcelId = uint64

// TrackParcelParams defines parameters for TrackParcel.
type TrackParcelParams struct {
	// Phone Sender's phone number
	Phone uint64 `form:"phone" json:"phone"`
}

type RegisterParcelJSONRequestBody = NewParcel

type PayParcelJSONRequestBody = NewPayment

type DispatchParcelJSONRequestBody = Dispatch

type UpdateLocationJSONRequestBody = LocationUpdate
