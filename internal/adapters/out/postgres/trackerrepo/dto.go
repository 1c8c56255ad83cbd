// Package trackerrepo persists parcel trackers with GORM. A tracker row is
// keyed by its parcel's identifier and references the parcels table.
package trackerrepo

import (
	"github.com/LONJEZ/Delivery-app/internal/adapters/out/postgres/parcelrepo"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/tracker"
)

type TrackerDTO struct {
	ParcelID        uint64                `gorm:"primaryKey;autoIncrement:false"`
	Parcel          *parcelrepo.ParcelDTO `gorm:"foreignKey:ParcelID;references:ID;constraint:OnDelete:CASCADE"`
	CurrentLocation string                `gorm:"not null"`
	HasArrived      bool                  `gorm:"not null"`
	Version         uint64                `gorm:"type:numeric(20,0);not null;default:1"`
}

func (TrackerDTO) TableName() string {
	return "parcel_trackers"
}

func fromDomain(t *tracker.Tracker) TrackerDTO {
	return TrackerDTO{
		ParcelID:        t.ParcelID().Uint64(),
		CurrentLocation: t.CurrentLocation(),
		HasArrived:      t.HasArrived(),
		Version:         t.Version(),
	}
}

func toDomain(dto TrackerDTO) (*tracker.Tracker, error) {
	id, err := kernel.NewParcelID(dto.ParcelID)
	if err != nil {
		return nil, err
	}

	return tracker.RestoreTracker(id, dto.CurrentLocation, dto.HasArrived, dto.Version)
}
