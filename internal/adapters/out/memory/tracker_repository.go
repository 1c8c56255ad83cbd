package memory

import (
	"context"
	"fmt"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/tracker"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
)

type TrackerRepository struct {
	uow *UnitOfWork
}

// Add refuses a tracker for an unknown parcel or a parcel that has one.
func (r *TrackerRepository) Add(_ context.Context, t *tracker.Tracker) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if !r.uow.active() {
		return ErrNoTransaction
	}

	id := t.ParcelID().Uint64()
	if _, ok := r.uow.parcel(id); !ok {
		return errs.NewObjectNotFoundError("parcel", t.ParcelID())
	}
	if _, ok := r.uow.tracker(id); ok {
		return fmt.Errorf("%w: tracker %d", ErrDuplicateKey, id)
	}

	r.uow.changes.trackers[id] = trackerFromDomain(t)
	return nil
}

func (r *TrackerRepository) Update(_ context.Context, t *tracker.Tracker) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if !r.uow.active() {
		return ErrNoTransaction
	}

	id := t.ParcelID().Uint64()
	if _, ok := r.uow.tracker(id); !ok {
		return errs.NewObjectNotFoundError("tracker", t.ParcelID())
	}

	r.uow.changes.trackers[id] = trackerFromDomain(t)
	return nil
}

func (r *TrackerRepository) Get(_ context.Context, parcelID kernel.ParcelID) (*tracker.Tracker, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	record, ok := r.uow.tracker(parcelID.Uint64())
	if !ok {
		return nil, errs.NewObjectNotFoundError("tracker", parcelID)
	}

	return record.toDomain()
}
