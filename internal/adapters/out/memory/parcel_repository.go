package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
)

// ErrDuplicateKey is returned when adding a record whose key is taken.
var ErrDuplicateKey = errors.New("duplicate key")

type ParcelRepository struct {
	uow *UnitOfWork
}

func (r *ParcelRepository) Add(_ context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active() {
		return ErrNoTransaction
	}

	id := aggregate.ID().Uint64()
	if _, ok := r.uow.parcel(id); ok {
		return fmt.Errorf("%w: parcel %d", ErrDuplicateKey, id)
	}

	r.uow.changes.parcels[id] = parcelFromDomain(aggregate)
	return nil
}

func (r *ParcelRepository) Update(_ context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active() {
		return ErrNoTransaction
	}

	id := aggregate.ID().Uint64()
	if _, ok := r.uow.parcel(id); !ok {
		return errs.NewObjectNotFoundError("parcel", aggregate.ID())
	}

	r.uow.changes.parcels[id] = parcelFromDomain(aggregate)
	return nil
}

func (r *ParcelRepository) Get(_ context.Context, id kernel.ParcelID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, ok := r.uow.parcel(id.Uint64())
	if !ok {
		return nil, errs.NewObjectNotFoundError("parcel", id)
	}

	return record.toDomain()
}

func (r *ParcelRepository) GetForUpdate(ctx context.Context, id kernel.ParcelID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := r.uow.lock(ctx, parcelKey(id.Uint64())); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *ParcelRepository) GetAllAwaitingDispatch(
	_ context.Context,
	maxCharge kernel.Charge,
	limit int,
) ([]*parcel.Parcel, error) {
	merged := make(map[uint64]parcelRecord)
	for _, record := range r.uow.store.parcelsSnapshot() {
		merged[record.ID] = record
	}
	if r.uow.active() {
		for id, record := range r.uow.changes.parcels {
			merged[id] = record
		}
	}

	ids := make([]uint64, 0, len(merged))
	for id, record := range merged {
		if parcel.Status(record.Status).IsDispatched() || kernel.Charge(record.DeliveryCharge).Exceeds(maxCharge) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	parcels := make([]*parcel.Parcel, 0, len(ids))
	for _, id := range ids {
		p, err := merged[id].toDomain()
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
