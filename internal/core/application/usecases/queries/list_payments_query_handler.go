package queries

import (
	"context"
)

// ListPaymentsQueryHandler reads the payment ledger of one parcel, oldest
// first. An unknown parcel is errs.ErrObjectNotFound, a parcel nobody paid
// for yet an empty list.
type ListPaymentsQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListPaymentsQueryHandler(uowFactory ReadUoWFactory) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{uowFactory: uowFactory}
}

func (h ListPaymentsQueryHandler) Handle(ctx context.Context, query ListPaymentsQuery) ([]ListPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ParcelRepository().Get(ctx, query.ParcelID()); err != nil {
		return nil, err
	}

	entries, err := uow.PaymentRepository().GetAllByParcel(ctx, query.ParcelID())
	if err != nil {
		return nil, err
	}

	payments := make([]ListPaymentsQueryResponse, 0, len(entries))
	for _, e := range entries {
		payments = append(payments, ListPaymentsQueryResponse{
			ID:        e.ID(),
			Deposit:   e.Deposit().String(),
			Applied:   e.Applied().Uint64(),
			Remaining: e.Remaining().Uint64(),
			CreatedAt: e.CreatedAt(),
		})
	}

	return payments, nil
}
