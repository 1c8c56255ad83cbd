package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/services"
)

// PayParcelCommandHandler applies a deposit to a parcel and records it in
// the payment ledger. The parcel is locked for the whole transaction, so
// concurrent payments on one parcel never lose an update.
type PayParcelCommandHandler struct {
	uowFactory PaymentUoWFactory
	processor  services.PaymentProcessor
	logger     *slog.Logger
	now        func() time.Time
}

func NewPayParcelCommandHandler(uowFactory PaymentUoWFactory, logger *slog.Logger) PayParcelCommandHandler {
	return PayParcelCommandHandler{
		uowFactory: uowFactory,
		processor:  services.NewPaymentProcessor(),
		logger:     logger.With("component", "pay_parcel"),
		now:        time.Now,
	}
}

// Handle returns what the deposit did to the balance. Overpayment is not an
// error: the balance stops at zero.
func (h *PayParcelCommandHandler) Handle(ctx context.Context, cmd PayParcelCommand) (parcel.PaymentOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return parcel.PaymentOutcome{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return parcel.PaymentOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return parcel.PaymentOutcome{}, err
	}

	outcome, entry, err := h.processor.Pay(p, cmd.Deposit(), h.now())
	if err != nil {
		return parcel.PaymentOutcome{}, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return parcel.PaymentOutcome{}, err
	}

	if err = uow.PaymentRepository().Add(ctx, entry); err != nil {
		return parcel.PaymentOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return parcel.PaymentOutcome{}, err
	}

	if outcome.ReadyForDispatch() {
		h.logger.InfoContext(ctx, "ready for dispatch",
			"parcel_id", p.ID().Uint64(),
			"applied", outcome.Applied.Uint64(),
		)
	} else {
		h.logger.InfoContext(ctx, "amount still owed",
			"parcel_id", p.ID().Uint64(),
			"applied", outcome.Applied.Uint64(),
			"remaining", outcome.Remaining.Uint64(),
		)
	}

	return outcome, nil
}
