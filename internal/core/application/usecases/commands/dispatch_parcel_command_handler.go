package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/tracker"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/services"
	"github.com/LONJEZ/Delivery-app/internal/core/ports"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
)

// DispatchParcelCommandHandler runs a parcel through the dispatch gate and
// stores the tracker it creates. A refused dispatch changes nothing.
type DispatchParcelCommandHandler struct {
	uowFactory DispatchUoWFactory
	gate       services.DispatchGate
	cache      ports.TrackingCache
	logger     *slog.Logger
}

func NewDispatchParcelCommandHandler(
	uowFactory DispatchUoWFactory,
	gate services.DispatchGate,
	cache ports.TrackingCache,
	logger *slog.Logger,
) DispatchParcelCommandHandler {
	return DispatchParcelCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		cache:      cache,
		logger:     logger.With("component", "dispatch_parcel"),
	}
}

// Handle returns parcel.ErrPaymentPending while more than the threshold is
// owed and parcel.ErrAlreadyDispatched on a repeated dispatch.
func (h *DispatchParcelCommandHandler) Handle(ctx context.Context, cmd DispatchParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	trackerRepo := uow.TrackerRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	existing, err := trackerRepo.Get(ctx, cmd.ParcelID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	t, err := h.gate.Dispatch(p, existing, cmd.Location())
	if errors.Is(err, parcel.ErrPaymentPending) {
		h.logger.WarnContext(ctx, "payment pending, dispatch refused",
			"parcel_id", p.ID().Uint64(),
			"owed", p.DeliveryCharge().Uint64(),
			"threshold", h.gate.Threshold().Uint64(),
		)
	}
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = trackerRepo.Add(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "parcel dispatched",
		"parcel_id", p.ID().Uint64(),
		"location", t.CurrentLocation(),
	)
	h.warmCache(ctx, p, t)

	return nil
}

func (h *DispatchParcelCommandHandler) warmCache(ctx context.Context, p *parcel.Parcel, t *tracker.Tracker) {
	if err := h.cache.Set(ctx, trackingEntry(p, t)); err != nil {
		h.logger.WarnContext(ctx, "tracking cache not updated",
			"parcel_id", p.ID().Uint64(),
			"error", err,
		)
	}
}

func trackingEntry(p *parcel.Parcel, t *tracker.Tracker) ports.TrackingEntry {
	return ports.TrackingEntry{
		ParcelID:    p.ID().Uint64(),
		SenderPhone: p.Sender().Phone().Uint64(),
		Location:    t.CurrentLocation(),
		HasArrived:  t.HasArrived(),
		Version:     t.Version(),
	}
}
