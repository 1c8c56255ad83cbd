package queries

import (
	"context"
)

// GetParcelQueryHandler reads one parcel.
type GetParcelQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetParcelQueryHandler(uowFactory ReadUoWFactory) GetParcelQueryHandler {
	return GetParcelQueryHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound for an unknown identifier.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetParcelQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ParcelRepository().Get(ctx, query.ParcelID())
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	return GetParcelQueryResponse{
		ID:             p.ID().Uint64(),
		SenderName:     p.Sender().Name(),
		SenderPhone:    p.Sender().Phone().Uint64(),
		ReceiverName:   p.Receiver().Name(),
		ReceiverPhone:  p.Receiver().Phone().Uint64(),
		DeliveryCharge: p.DeliveryCharge().Uint64(),
		Destination:    p.Destination(),
		IsFragile:      p.IsFragile(),
		DateSent:       p.DateSent(),
		DateReceived:   p.DateReceived(),
		IsReceived:     p.IsReceived(),
		Status:         p.Status(),
	}, nil
}
