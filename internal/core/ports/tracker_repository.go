package ports

import (
	"context"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/tracker"
)

// TrackerRepository stores trackers keyed by their parcel's identifier.
type TrackerRepository interface {
	// Add stores a tracker. Adding a second tracker for the same parcel fails.
	Add(ctx context.Context, t *tracker.Tracker) error

	// Update stores a moved tracker.
	Update(ctx context.Context, t *tracker.Tracker) error

	// Get returns errs.ErrObjectNotFound when the parcel has no tracker.
	Get(ctx context.Context, parcelID kernel.ParcelID) (*tracker.Tracker, error)
}
