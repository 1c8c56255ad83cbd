package trackerrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/tracker"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrTrackerExists is returned when the parcel already has a tracker.
var ErrTrackerExists = errors.New("tracker already exists")

// GormTrackerRepository implements TrackerRepository using GORM.
type GormTrackerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormTrackerRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackerRepository {
	return &GormTrackerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the tracker. The parcel row must already exist.
func (r *GormTrackerRepository) Add(ctx context.Context, t *tracker.Tracker) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	if err := r.db.WithContext(ctx).Omit("Parcel").Create(&dto).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return fmt.Errorf("%w: parcel %s", ErrTrackerExists, t.ParcelID())
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return errs.NewObjectNotFoundErrorWithCause("parcel", t.ParcelID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate("tracker:"+t.ParcelID().String(), t)
	return nil
}

func (r *GormTrackerRepository) Update(ctx context.Context, t *tracker.Tracker) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	result := r.db.WithContext(ctx).
		Model(&TrackerDTO{}).
		Where("parcel_id = ?", dto.ParcelID).
		Select("current_location", "has_arrived", "version").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tracker", t.ParcelID())
	}

	r.tracker.TrackAggregate("tracker:"+t.ParcelID().String(), t)
	return nil
}

func (r *GormTrackerRepository) Get(ctx context.Context, parcelID kernel.ParcelID) (*tracker.Tracker, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto TrackerDTO
	if err := r.db.WithContext(ctx).First(&dto, "parcel_id = ?", parcelID.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracker", parcelID)
		}
		return nil, err
	}

	return toDomain(dto)
}
