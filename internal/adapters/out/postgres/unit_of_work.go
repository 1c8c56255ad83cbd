// Package postgres provides the GORM-based Unit of Work for the parcel
// registry.
//
// A unit of work wraps one database transaction. Every repository it hands
// out is bound to that transaction, so a registration, a payment or a
// dispatch either lands completely or not at all.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	p, err := uow.ParcelRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// mutate p
//	if err := uow.ParcelRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance owns its transaction; goroutines must not share one
//   - GetForUpdate and the identifier allocator take row locks released at Commit or Rollback
//   - Keep transactions short, they hold those locks
package postgres

import (
	"context"

	"github.com/LONJEZ/Delivery-app/internal/adapters/out/postgres/parcelrepo"
	"github.com/LONJEZ/Delivery-app/internal/adapters/out/postgres/paymentrepo"
	"github.com/LONJEZ/Delivery-app/internal/adapters/out/postgres/sequencerepo"
	"github.com/LONJEZ/Delivery-app/internal/adapters/out/postgres/trackerrepo"
	"github.com/LONJEZ/Delivery-app/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	Key       string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the transaction's writes visible and releases its locks.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction's writes and releases its locks.
// Returns gorm.ErrInvalidTransaction when no transaction is open, which is
// the case after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TrackerRepository() ports.TrackerRepository {
	return trackerrepo.NewGormTrackerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) IdentifierAllocator() ports.IdentifierAllocator {
	return sequencerepo.NewGormIdentifierAllocator(uow.conn())
}

// TrackAggregate records an aggregate written by a repository.
func (uow *GormUnitOfWork) TrackAggregate(key string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Key:       key,
		Aggregate: aggregate,
	})
}

// TrackedKeys lists the keys of aggregates written so far, in write order.
func (uow *GormUnitOfWork) TrackedKeys() []string {
	keys := make([]string, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		keys = append(keys, t.Key)
	}
	return keys
}

// conn is the open transaction, or the pool when there is none.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
