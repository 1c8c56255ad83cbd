package memory

import (
	"context"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
)

// IdentifierAllocator holds the sequence lock from the first Next until the
// unit of work ends, so concurrent registrations draw ids one after another
// and a rolled back registration leaves no gap.
type IdentifierAllocator struct {
	uow *UnitOfWork
}

func (a *IdentifierAllocator) Next(ctx context.Context) (kernel.ParcelID, error) {
	if err := a.uow.lock(ctx, sequenceKey); err != nil {
		return kernel.ParcelID{}, err
	}

	next := a.uow.changes.nextID
	if next == 0 {
		next = a.uow.store.next()
	}

	id, err := kernel.NewParcelID(next)
	if err != nil {
		return kernel.ParcelID{}, err
	}

	a.uow.changes.nextID = next + 1
	return id, nil
}
