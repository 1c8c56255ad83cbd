// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/LONJEZ/Delivery-app/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// TrackerRepoFactory provides access to the tracker repository within a transaction.
	TrackerRepoFactory interface {
		TrackerRepository() ports.TrackerRepository
	}

	// PaymentRepoFactory provides access to the payment ledger within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// AllocatorFactory provides the identifier allocator within a transaction.
	AllocatorFactory interface {
		IdentifierAllocator() ports.IdentifierAllocator
	}

	// RegistrationUoW allocates an identifier and stores the new parcel in
	// one transaction, so a failed registration does not consume an id.
	RegistrationUoW interface {
		TxManager
		ParcelRepoFactory
		AllocatorFactory
	}

	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// PaymentUoW updates a parcel balance and appends to the ledger.
	PaymentUoW interface {
		TxManager
		ParcelRepoFactory
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// DispatchUoW coordinates changes to a parcel and its tracker.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   p, err := uow.ParcelRepository().GetForUpdate(ctx, id)
	//   t, err := uow.TrackerRepository().Get(ctx, id)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DispatchUoW interface {
		TxManager
		ParcelRepoFactory
		TrackerRepoFactory
	}

	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
