package commands

import (
	"errors"
	"strings"

	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

// DefaultDispatchBatchSize caps how many parcels one run dispatches.
const DefaultDispatchBatchSize = 100

var ErrDispatchPaidParcelsCommandIsNotConstructed = errors.New(
	"DispatchPaidParcelsCommand must be created via NewDispatchPaidParcelsCommand constructor",
)

// DispatchPaidParcelsCommand dispatches, from location, every parcel the
// gate would let through, up to batchSize of them.
type DispatchPaidParcelsCommand struct { //nolint:recvcheck //using for validation
	location  string
	batchSize int

	guard guard.ConstructorGuard
}

func NewDispatchPaidParcelsCommand(location string, batchSize int) (DispatchPaidParcelsCommand, error) {
	if strings.TrimSpace(location) == "" {
		return DispatchPaidParcelsCommand{}, ErrLocationIsRequired
	}
	if batchSize <= 0 {
		return DispatchPaidParcelsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}

	return DispatchPaidParcelsCommand{
		location:  location,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DispatchPaidParcelsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPaidParcelsCommandIsNotConstructed)
}

func (c DispatchPaidParcelsCommand) Location() string {
	return c.location
}

func (c DispatchPaidParcelsCommand) BatchSize() int {
	return c.batchSize
}
