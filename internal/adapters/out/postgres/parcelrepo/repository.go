package parcelrepo

import (
	"context"
	"errors"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a newly registered parcel.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update writes the mutable columns of an existing parcel.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select("delivery_charge", "status", "date_received", "is_received").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormParcelRepository) Get(ctx context.Context, id kernel.ParcelID) (*parcel.Parcel, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate reads the parcel with SELECT ... FOR UPDATE. The row lock
// lives as long as the surrounding transaction.
func (r *GormParcelRepository) GetForUpdate(ctx context.Context, id kernel.ParcelID) (*parcel.Parcel, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetAllAwaitingDispatch lists undispatched parcels owing at most maxCharge.
func (r *GormParcelRepository) GetAllAwaitingDispatch(
	ctx context.Context,
	maxCharge kernel.Charge,
	limit int,
) ([]*parcel.Parcel, error) {
	query := r.db.WithContext(ctx).
		Where("status <> ? AND delivery_charge <= ?", int(parcel.Dispatched), maxCharge.Uint64()).
		Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []ParcelDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

func (r *GormParcelRepository) get(ctx context.Context, db *gorm.DB, id kernel.ParcelID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
