// Package sequencerepo hands out gapless parcel identifiers from a row in
// the parcel_sequences table.
package sequencerepo

import (
	"context"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ParcelSequence names the row parcel identifiers are drawn from.
const ParcelSequence = "parcels"

type SequenceDTO struct {
	Name   string `gorm:"primaryKey"`
	NextID uint64 `gorm:"type:numeric(20,0);not null"`
}

func (SequenceDTO) TableName() string {
	return "parcel_sequences"
}

// GormIdentifierAllocator draws ids by locking the sequence row FOR UPDATE
// and bumping it in the caller's transaction. Concurrent registrations queue
// on the row lock; a rollback undoes the bump, so no id is skipped.
type GormIdentifierAllocator struct {
	db   *gorm.DB
	name string
}

func NewGormIdentifierAllocator(db *gorm.DB) *GormIdentifierAllocator {
	return &GormIdentifierAllocator{db: db, name: ParcelSequence}
}

func (a *GormIdentifierAllocator) Next(ctx context.Context) (kernel.ParcelID, error) {
	db := a.db.WithContext(ctx)

	seed := SequenceDTO{Name: a.name, NextID: kernel.FirstParcelID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return kernel.ParcelID{}, err
	}

	var row SequenceDTO
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, "name = ?", a.name).Error; err != nil {
		return kernel.ParcelID{}, err
	}

	id, err := kernel.NewParcelID(row.NextID)
	if err != nil {
		return kernel.ParcelID{}, err
	}

	err = db.Model(&SequenceDTO{}).
		Where("name = ?", a.name).
		Update("next_id", row.NextID+1).Error
	if err != nil {
		return kernel.ParcelID{}, err
	}

	return id, nil
}
