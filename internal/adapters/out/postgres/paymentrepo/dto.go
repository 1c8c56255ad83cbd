// Package paymentrepo stores the payment ledger with GORM.
package paymentrepo

import (
	"time"

	"github.com/LONJEZ/Delivery-app/internal/adapters/out/postgres/parcelrepo"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO is one ledger row. Deposits exceed 64 bits, so they are kept
// as decimal text. Seq orders payments recorded within the same instant.
type PaymentDTO struct {
	ID        uuid.UUID             `gorm:"type:uuid;primaryKey"`
	Seq       uint64                `gorm:"autoIncrement;uniqueIndex"`
	ParcelID  uint64                `gorm:"not null;index"`
	Parcel    *parcelrepo.ParcelDTO `gorm:"foreignKey:ParcelID;references:ID;constraint:OnDelete:CASCADE"`
	Deposit   string                `gorm:"type:text;not null"`
	Applied   uint64                `gorm:"type:numeric(20,0);not null"`
	Remaining uint64                `gorm:"type:numeric(20,0);not null"`
	CreatedAt time.Time             `gorm:"not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        p.ID().Bytes(),
		ParcelID:  p.ParcelID().Uint64(),
		Deposit:   p.Deposit().String(),
		Applied:   p.Applied().Uint64(),
		Remaining: p.Remaining().Uint64(),
		CreatedAt: p.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.NewParcelID(dto.ParcelID)
	if err != nil {
		return nil, err
	}

	deposit, err := kernel.DepositFromString(dto.Deposit)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		parcelID,
		deposit,
		kernel.Charge(dto.Applied),
		kernel.Charge(dto.Remaining),
		dto.CreatedAt,
	)
}
