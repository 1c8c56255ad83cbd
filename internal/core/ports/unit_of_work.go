package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle: changes made
// through its repositories become visible to others only on Commit, and row
// locks taken by GetForUpdate are held until Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction, e.g. after Commit.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a ParcelRepository bound to the current transaction.
	ParcelRepository() ParcelRepository

	// TrackerRepository returns a TrackerRepository bound to the current transaction.
	TrackerRepository() TrackerRepository

	// PaymentRepository returns a PaymentRepository bound to the current transaction.
	PaymentRepository() PaymentRepository

	// IdentifierAllocator returns the parcel id allocator bound to the
	// current transaction. An id drawn in a rolled back transaction is
	// handed out again.
	IdentifierAllocator() IdentifierAllocator
}
