package ports

import (
	"context"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/payment"
)

// PaymentRepository is the append-only payment ledger.
type PaymentRepository interface {
	Add(ctx context.Context, p *payment.Payment) error

	// GetAllByParcel lists a parcel's payments oldest first.
	GetAllByParcel(ctx context.Context, parcelID kernel.ParcelID) ([]*payment.Payment, error)
}
