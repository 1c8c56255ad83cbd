package commands

import (
	"context"
	"log/slog"

	"github.com/LONJEZ/Delivery-app/internal/core/ports"
)

// UpdateTrackerLocationCommandHandler moves a tracker and caches the new
// tracking view. The entry carries the new tracker version, so a slower
// reader holding the previous version cannot put it back.
type UpdateTrackerLocationCommandHandler struct {
	uowFactory DispatchUoWFactory
	cache      ports.TrackingCache
	logger     *slog.Logger
}

func NewUpdateTrackerLocationCommandHandler(
	uowFactory DispatchUoWFactory,
	cache ports.TrackingCache,
	logger *slog.Logger,
) UpdateTrackerLocationCommandHandler {
	return UpdateTrackerLocationCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "update_tracker_location"),
	}
}

func (h *UpdateTrackerLocationCommandHandler) Handle(ctx context.Context, cmd UpdateTrackerLocationCommand) error {
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

	// the parcel row lock serializes this with dispatch of the same id
	p, err := uow.ParcelRepository().GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	trackerRepo := uow.TrackerRepository()
	t, err := trackerRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = t.MoveTo(cmd.Location(), cmd.Arrived()); err != nil {
		return err
	}

	if err = trackerRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "tracker moved",
		"parcel_id", cmd.ParcelID().Uint64(),
		"location", t.CurrentLocation(),
		"has_arrived", t.HasArrived(),
		"version", t.Version(),
	)

	if err = h.cache.Set(ctx, trackingEntry(p, t)); err == nil {
		return nil
	}
	h.logger.WarnContext(ctx, "tracking cache not updated, dropping entry",
		"parcel_id", cmd.ParcelID().Uint64(),
		"error", err,
	)
	if err = h.cache.Delete(ctx, cmd.ParcelID()); err != nil {
		h.logger.WarnContext(ctx, "tracking cache not invalidated",
			"parcel_id", cmd.ParcelID().Uint64(),
			"error", err,
		)
	}

	return nil
}
