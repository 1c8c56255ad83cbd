package commands

import (
	"context"
	"errors"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
)

// ParcelDispatcher dispatches one parcel; DispatchParcelCommandHandler is
// the production implementation.
type ParcelDispatcher interface {
	Handle(ctx context.Context, cmd DispatchParcelCommand) error
}

// DispatchPaidParcelsCommandHandler is the system-triggered dispatch: it
// looks up parcels within the threshold and dispatches each one in its own
// transaction, so one failure does not hold back the rest.
type DispatchPaidParcelsCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher ParcelDispatcher
	threshold  kernel.Charge
}

func NewDispatchPaidParcelsCommandHandler(
	uowFactory DispatchUoWFactory,
	dispatcher ParcelDispatcher,
	threshold kernel.Charge,
) DispatchPaidParcelsCommandHandler {
	return DispatchPaidParcelsCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		threshold:  threshold,
	}
}

// Handle returns how many parcels were dispatched. Parcels that a concurrent
// request paid for or dispatched first are skipped silently; other failures
// are joined into the returned error.
func (h *DispatchPaidParcelsCommandHandler) Handle(ctx context.Context, cmd DispatchPaidParcelsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ids, err := h.candidates(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	var (
		dispatched int
		failures   []error
	)
	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		dispatchCmd, cmdErr := NewDispatchParcelCommand(id, cmd.Location())
		if cmdErr != nil {
			return dispatched, cmdErr
		}

		err = h.dispatcher.Handle(ctx, dispatchCmd)
		switch {
		case err == nil:
			dispatched++
		case errors.Is(err, parcel.ErrAlreadyDispatched), errors.Is(err, parcel.ErrPaymentPending):
		default:
			failures = append(failures, err)
		}
	}

	return dispatched, errors.Join(failures...)
}

func (h *DispatchPaidParcelsCommandHandler) candidates(ctx context.Context, limit int) ([]kernel.ParcelID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels, err := uow.ParcelRepository().GetAllAwaitingDispatch(ctx, h.threshold, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.ParcelID, 0, len(parcels))
	for _, p := range parcels {
		ids = append(ids, p.ID())
	}

	return ids, nil
}
