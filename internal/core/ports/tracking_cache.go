package ports

import (
	"context"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
)

// TrackingEntry is the cached answer to a tracking query. SenderPhone is
// kept so the ownership check still runs on a cache hit. Version is the
// tracker version the entry was read from.
type TrackingEntry struct {
	ParcelID    uint64 `json:"parcelId"`
	SenderPhone uint64 `json:"senderPhone"`
	Location    string `json:"location"`
	HasArrived  bool   `json:"hasArrived"`
	Version     uint64 `json:"version"`
}

// TrackingCache is a read-through cache in front of the parcel and tracker
// repositories. It is never the source of truth: a failing cache degrades to
// repository reads.
type TrackingCache interface {
	// Get reports found=false on a miss.
	Get(ctx context.Context, id kernel.ParcelID) (entry TrackingEntry, found bool, err error)
	// Set stores entry unless the cache already holds a higher version for
	// the same parcel. Refusing an older entry is not an error.
	Set(ctx context.Context, entry TrackingEntry) error
	Delete(ctx context.Context, id kernel.ParcelID) error
}
