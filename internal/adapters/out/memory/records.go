package memory

import (
	"time"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/payment"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/tracker"

	"github.com/google/uuid"
)

// Records are plain copies of aggregate state. Aggregates handed to callers
// are always rebuilt from them, so mutating one never touches the store.

type parcelRecord struct {
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
	Status         int
}

type trackerRecord struct {
	ParcelID        uint64
	CurrentLocation string
	HasArrived      bool
	Version         uint64
}

type paymentRecord struct {
	ID        uuid.UUID
	ParcelID  uint64
	Deposit   string
	Applied   uint64
	Remaining uint64
	CreatedAt time.Time
}

func parcelFromDomain(p *parcel.Parcel) parcelRecord {
	return parcelRecord{
		ID:             p.ID().Uint64(),
		SenderName:     p.Sender().Name(),
		SenderPhone:    p.Sender().Phone().Uint64(),
		ReceiverName:   p.Receiver().Name(),
		ReceiverPhone:  p.Receiver().Phone().Uint64(),
		DeliveryCharge: p.DeliveryCharge().Uint64(),
		Destination:    p.Destination(),
		IsFragile:      p.IsFragile(),
		DateSent:       p.DateSent(),
		DateReceived:   p.DateReceived(),
		IsReceived:     p.IsReceived(),
		Status:         int(p.Status()),
	}
}

func (r parcelRecord) toDomain() (*parcel.Parcel, error) {
	id, err := kernel.NewParcelID(r.ID)
	if err != nil {
		return nil, err
	}
	sender, err := parcel.NewContact("sender", r.SenderName, r.SenderPhone)
	if err != nil {
		return nil, err
	}
	receiver, err := parcel.NewContact("receiver", r.ReceiverName, r.ReceiverPhone)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		sender,
		receiver,
		kernel.Charge(r.DeliveryCharge),
		r.Destination,
		r.IsFragile,
		r.DateSent,
		r.DateReceived,
		r.IsReceived,
		parcel.Status(r.Status),
	)
}

func trackerFromDomain(t *tracker.Tracker) trackerRecord {
	return trackerRecord{
		ParcelID:        t.ParcelID().Uint64(),
		CurrentLocation: t.CurrentLocation(),
		HasArrived:      t.HasArrived(),
		Version:         t.Version(),
	}
}

func (r trackerRecord) toDomain() (*tracker.Tracker, error) {
	id, err := kernel.NewParcelID(r.ParcelID)
	if err != nil {
		return nil, err
	}
	return tracker.RestoreTracker(id, r.CurrentLocation, r.HasArrived, r.Version)
}

func paymentFromDomain(p *payment.Payment) paymentRecord {
	return paymentRecord{
		ID:        p.ID().Bytes(),
		ParcelID:  p.ParcelID().Uint64(),
		Deposit:   p.Deposit().String(),
		Applied:   p.Applied().Uint64(),
		Remaining: p.Remaining().Uint64(),
		CreatedAt: p.CreatedAt(),
	}
}

func (r paymentRecord) toDomain() (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.NewParcelID(r.ParcelID)
	if err != nil {
		return nil, err
	}
	deposit, err := kernel.DepositFromString(r.Deposit)
	if err != nil {
		return nil, err
	}
	return payment.RestorePayment(id, parcelID, deposit, kernel.Charge(r.Applied), kernel.Charge(r.Remaining), r.CreatedAt)
}
