// Package queries contains read-only operations. Queries open a unit of work
// only to read a consistent snapshot and always roll it back.
package queries

import (
	"context"

	"github.com/LONJEZ/Delivery-app/internal/core/ports"
)

type (
	// ReadUoW exposes the repositories queries read from.
	ReadUoW interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error
		ParcelRepository() ports.ParcelRepository
		TrackerRepository() ports.TrackerRepository
		PaymentRepository() ports.PaymentRepository
	}

	ReadUoWFactory interface {
		Create() ReadUoW
	}
)
