package memory

import (
	"context"
	"errors"

	"github.com/LONJEZ/Delivery-app/internal/core/ports"
)

// ErrNoTransaction is returned by Commit, Rollback and writes outside Begin.
var ErrNoTransaction = errors.New("no active transaction")

// changeSet is what a unit of work has written but not committed yet.
type changeSet struct {
	parcels  map[uint64]parcelRecord
	trackers map[uint64]trackerRecord
	payments []paymentRecord
	nextID   uint64
}

func newChangeSet() *changeSet {
	return &changeSet{
		parcels:  make(map[uint64]parcelRecord),
		trackers: make(map[uint64]trackerRecord),
	}
}

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is not safe for concurrent use; create one per operation.
type UnitOfWork struct {
	store   *Store
	changes *changeSet
	held    map[lockKey]struct{}
}

// Begin starts a transaction. Calling it twice is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.changes != nil {
		return nil
	}
	uow.changes = newChangeSet()
	uow.held = make(map[lockKey]struct{})
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.changes == nil {
		return ErrNoTransaction
	}
	uow.store.apply(uow.changes)
	uow.end()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.changes == nil {
		return ErrNoTransaction
	}
	uow.end()
	return nil
}

func (uow *UnitOfWork) ParcelRepository() ports.ParcelRepository {
	return &ParcelRepository{uow: uow}
}

func (uow *UnitOfWork) TrackerRepository() ports.TrackerRepository {
	return &TrackerRepository{uow: uow}
}

func (uow *UnitOfWork) PaymentRepository() ports.PaymentRepository {
	return &PaymentRepository{uow: uow}
}

func (uow *UnitOfWork) IdentifierAllocator() ports.IdentifierAllocator {
	return &IdentifierAllocator{uow: uow}
}

func (uow *UnitOfWork) active() bool {
	return uow.changes != nil
}

// lock takes key for the rest of the transaction. Re-locking a held key is a no-op.
func (uow *UnitOfWork) lock(ctx context.Context, key lockKey) error {
	if !uow.active() {
		return ErrNoTransaction
	}
	if _, ok := uow.held[key]; ok {
		return nil
	}
	if err := uow.store.locks.Lock(ctx, key); err != nil {
		return err
	}
	uow.held[key] = struct{}{}
	return nil
}

func (uow *UnitOfWork) end() {
	for key := range uow.held {
		uow.store.locks.Unlock(key)
	}
	uow.held = nil
	uow.changes = nil
}

func (uow *UnitOfWork) parcel(id uint64) (parcelRecord, bool) {
	if uow.active() {
		if r, ok := uow.changes.parcels[id]; ok {
			return r, true
		}
	}
	return uow.store.parcel(id)
}

func (uow *UnitOfWork) tracker(id uint64) (trackerRecord, bool) {
	if uow.active() {
		if r, ok := uow.changes.trackers[id]; ok {
			return r, true
		}
	}
	return uow.store.tracker(id)
}
