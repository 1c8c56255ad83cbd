// Package parcelrepo persists parcel aggregates with GORM.
package parcelrepo

import (
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
)

// ParcelDTO is the row stored in the parcels table. Charges are kept as
// numeric so the full uint64 range survives.
type ParcelDTO struct {
	ID             uint64     `gorm:"primaryKey;autoIncrement:false"`
	Sender         ContactDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver       ContactDTO `gorm:"embedded;embeddedPrefix:receiver_"`
	DeliveryCharge uint64     `gorm:"type:numeric(20,0);not null;index"`
	Destination    string     `gorm:"not null"`
	IsFragile      bool       `gorm:"not null"`
	DateSent       string     `gorm:"not null"`
	DateReceived   string
	IsReceived     bool `gorm:"not null"`
	Status         int  `gorm:"not null;index"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

// ContactDTO is embedded twice, once per party.
type ContactDTO struct {
	Name  string `gorm:"not null"`
	Phone uint64 `gorm:"type:numeric(20,0);not null"`
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID: p.ID().Uint64(),
		Sender: ContactDTO{
			Name:  p.Sender().Name(),
			Phone: p.Sender().Phone().Uint64(),
		},
		Receiver: ContactDTO{
			Name:  p.Receiver().Name(),
			Phone: p.Receiver().Phone().Uint64(),
		},
		DeliveryCharge: p.DeliveryCharge().Uint64(),
		Destination:    p.Destination(),
		IsFragile:      p.IsFragile(),
		DateSent:       p.DateSent(),
		DateReceived:   p.DateReceived(),
		IsReceived:     p.IsReceived(),
		Status:         int(p.Status()),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.NewParcelID(dto.ID)
	if err != nil {
		return nil, err
	}

	sender, err := parcel.NewContact("sender", dto.Sender.Name, dto.Sender.Phone)
	if err != nil {
		return nil, err
	}

	receiver, err := parcel.NewContact("receiver", dto.Receiver.Name, dto.Receiver.Phone)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		sender,
		receiver,
		kernel.Charge(dto.DeliveryCharge),
		dto.Destination,
		dto.IsFragile,
		dto.DateSent,
		dto.DateReceived,
		dto.IsReceived,
		parcel.Status(dto.Status),
	)
}
