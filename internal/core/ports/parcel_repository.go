package ports

import (
	"context"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a newly registered parcel.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists the balance and status of an existing parcel.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by identifier.
	// Returns errs.ErrObjectNotFound when there is none.
	Get(ctx context.Context, id kernel.ParcelID) (*parcel.Parcel, error)

	// GetForUpdate is Get plus an exclusive lock on the parcel held until the
	// unit of work ends. Pay and dispatch on the same id are serialized through it.
	GetForUpdate(ctx context.Context, id kernel.ParcelID) (*parcel.Parcel, error)

	// GetAllAwaitingDispatch returns undispatched parcels owing at most
	// maxCharge, ordered by identifier.
	GetAllAwaitingDispatch(ctx context.Context, maxCharge kernel.Charge, limit int) ([]*parcel.Parcel, error)
}

// IdentifierAllocator hands out parcel identifiers: 1, 2, 3... strictly
// increasing and never reused.
type IdentifierAllocator interface {
	Next(ctx context.Context) (kernel.ParcelID, error)
}
