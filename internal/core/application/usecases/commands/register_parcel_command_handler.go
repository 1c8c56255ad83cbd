package commands

import (
	"context"
	"log/slog"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
)

// RegisterParcelCommandHandler allocates the next identifier and stores a
// new parcel under it.
//
// Example:
//
//	handler := NewRegisterParcelCommandHandler(uowFactory, logger)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
//	fmt.Printf("parcel %s registered", id)
type RegisterParcelCommandHandler struct {
	uowFactory RegistrationUoWFactory
	logger     *slog.Logger
}

func NewRegisterParcelCommandHandler(uowFactory RegistrationUoWFactory, logger *slog.Logger) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "register_parcel"),
	}
}

// Handle returns the identifier of the new parcel. Nothing is stored and no
// identifier is consumed when it fails.
func (h *RegisterParcelCommandHandler) Handle(ctx context.Context, cmd RegisterParcelCommand) (kernel.ParcelID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ParcelID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ParcelID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.IdentifierAllocator().Next(ctx)
	if err != nil {
		return kernel.ParcelID{}, err
	}

	p, err := parcel.NewParcel(
		id,
		cmd.Sender(),
		cmd.Receiver(),
		cmd.DeliveryCharge(),
		cmd.Destination(),
		cmd.IsFragile(),
		cmd.DateSent(),
	)
	if err != nil {
		return kernel.ParcelID{}, err
	}

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return kernel.ParcelID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ParcelID{}, err
	}

	h.logger.InfoContext(ctx, "parcel registered",
		"parcel_id", id.Uint64(),
		"delivery_charge", p.DeliveryCharge().Uint64(),
		"destination", p.Destination(),
	)

	return id, nil
}
