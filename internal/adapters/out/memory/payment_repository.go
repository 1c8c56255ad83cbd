package memory

import (
	"context"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/payment"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
)

type PaymentRepository struct {
	uow *UnitOfWork
}

func (r *PaymentRepository) Add(_ context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !r.uow.active() {
		return ErrNoTransaction
	}
	if _, ok := r.uow.parcel(p.ParcelID().Uint64()); !ok {
		return errs.NewObjectNotFoundError("parcel", p.ParcelID())
	}

	r.uow.changes.payments = append(r.uow.changes.payments, paymentFromDomain(p))
	return nil
}

func (r *PaymentRepository) GetAllByParcel(_ context.Context, parcelID kernel.ParcelID) ([]*payment.Payment, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	records := r.uow.store.paymentsOf(parcelID.Uint64())
	if r.uow.active() {
		for _, record := range r.uow.changes.payments {
			if record.ParcelID == parcelID.Uint64() {
				records = append(records, record)
			}
		}
	}

	payments := make([]*payment.Payment, 0, len(records))
	for _, record := range records {
		p, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}
