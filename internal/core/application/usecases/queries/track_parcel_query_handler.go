package queries

import (
	"context"
	"log/slog"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/services"
	"github.com/LONJEZ/Delivery-app/internal/core/ports"
)

// TrackParcelQueryHandler answers tracking queries from the cache when it
// can and from the repositories otherwise. The sender check runs on both
// paths; a mismatch returns services.ErrUnauthorized and no location.
type TrackParcelQueryHandler struct {
	uowFactory ReadUoWFactory
	cache      ports.TrackingCache
	authorizer services.TrackingAuthorizer
	logger     *slog.Logger
}

func NewTrackParcelQueryHandler(uowFactory ReadUoWFactory, cache ports.TrackingCache, logger *slog.Logger) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{
		uowFactory: uowFactory,
		cache:      cache,
		authorizer: services.NewTrackingAuthorizer(),
		logger:     logger.With("component", "track_parcel"),
	}
}

func (h TrackParcelQueryHandler) Handle(ctx context.Context, query TrackParcelQuery) (TrackingView, error) {
	if err := query.Validate(); err != nil {
		return TrackingView{}, err
	}

	entry, found, err := h.cache.Get(ctx, query.ParcelID())
	if err != nil {
		h.logger.WarnContext(ctx, "tracking cache unavailable",
			"parcel_id", query.ParcelID().Uint64(),
			"error", err,
		)
	}
	if err != nil || !found {
		entry, err = h.load(ctx, query.ParcelID())
		if err != nil {
			return TrackingView{}, err
		}
		h.store(ctx, entry)
	}

	sender, err := kernel.NewPhone(entry.SenderPhone)
	if err != nil {
		return TrackingView{}, err
	}
	if err = h.authorizer.Authorize(sender, query.Requester()); err != nil {
		h.logger.WarnContext(ctx, "tracking refused",
			"parcel_id", query.ParcelID().Uint64(),
		)
		return TrackingView{}, err
	}

	return TrackingView{
		Location:   entry.Location,
		HasArrived: entry.HasArrived,
	}, nil
}

func (h TrackParcelQueryHandler) load(ctx context.Context, id kernel.ParcelID) (ports.TrackingEntry, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.TrackingEntry{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ParcelRepository().Get(ctx, id)
	if err != nil {
		return ports.TrackingEntry{}, err
	}

	t, err := uow.TrackerRepository().Get(ctx, id)
	if err != nil {
		return ports.TrackingEntry{}, err
	}

	entry := ports.TrackingEntry{
		ParcelID:    id.Uint64(),
		SenderPhone: p.Sender().Phone().Uint64(),
		Location:    t.CurrentLocation(),
		HasArrived:  t.HasArrived(),
		Version:     t.Version(),
	}

	return entry, nil
}

// store caches entry read from storage. The cache keeps whichever version is
// newer, so a move committed after the read wins.
func (h TrackParcelQueryHandler) store(ctx context.Context, entry ports.TrackingEntry) {
	if err := h.cache.Set(ctx, entry); err != nil {
		h.logger.WarnContext(ctx, "tracking cache not updated",
			"parcel_id", entry.ParcelID,
			"error", err,
		)
	}
}
