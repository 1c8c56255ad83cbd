// Package registry is the parcel registry: one entry point composing the
// command and query handlers behind register, pay, dispatch and track, plus
// the operator operations built on the same stores.
package registry

import (
	"context"
	"log/slog"

	"github.com/LONJEZ/Delivery-app/internal/core/application/usecases/commands"
	"github.com/LONJEZ/Delivery-app/internal/core/application/usecases/queries"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/services"
	"github.com/LONJEZ/Delivery-app/internal/core/ports"
)

// Registry is safe for concurrent use. Operations on the same parcel are
// serialized by the storage adapter; operations on distinct parcels are not.
type Registry struct {
	threshold kernel.Charge

	register     commands.RegisterParcelCommandHandler
	pay          commands.PayParcelCommandHandler
	dispatch     commands.DispatchParcelCommandHandler
	moveTracker  commands.UpdateTrackerLocationCommandHandler
	dispatchPaid commands.DispatchPaidParcelsCommandHandler

	track        queries.TrackParcelQueryHandler
	getParcel    queries.GetParcelQueryHandler
	listPayments queries.ListPaymentsQueryHandler
}

// New wires every handler to uowFactory. threshold is the largest balance a
// parcel may still owe when dispatched.
func New(
	uowFactory ports.UnitOfWorkFactory,
	cache ports.TrackingCache,
	threshold kernel.Charge,
	logger *slog.Logger,
) *Registry {
	dispatchUoW := dispatchFactory(uowFactory)
	readUoW := readFactory(uowFactory)

	r := &Registry{
		threshold:    threshold,
		register:     commands.NewRegisterParcelCommandHandler(registrationFactory(uowFactory), logger),
		pay:          commands.NewPayParcelCommandHandler(paymentFactory(uowFactory), logger),
		dispatch:     commands.NewDispatchParcelCommandHandler(dispatchUoW, services.NewDispatchGate(threshold), cache, logger),
		moveTracker:  commands.NewUpdateTrackerLocationCommandHandler(dispatchUoW, cache, logger),
		track:        queries.NewTrackParcelQueryHandler(readUoW, cache, logger),
		getParcel:    queries.NewGetParcelQueryHandler(readUoW),
		listPayments: queries.NewListPaymentsQueryHandler(readUoW),
	}
	r.dispatchPaid = commands.NewDispatchPaidParcelsCommandHandler(dispatchUoW, &r.dispatch, threshold)

	return r
}

func (r *Registry) DispatchThreshold() kernel.Charge {
	return r.threshold
}

// Register stores a new parcel and returns its identifier.
func (r *Registry) Register(ctx context.Context, details commands.ParcelDetails) (kernel.ParcelID, error) {
	cmd, err := commands.NewRegisterParcelCommand(details)
	if err != nil {
		return kernel.ParcelID{}, err
	}
	return r.register.Handle(ctx, cmd)
}

// Pay applies deposit, in native units, to the parcel's charge.
func (r *Registry) Pay(ctx context.Context, id kernel.ParcelID, deposit kernel.Deposit) (parcel.PaymentOutcome, error) {
	cmd, err := commands.NewPayParcelCommand(id, deposit)
	if err != nil {
		return parcel.PaymentOutcome{}, err
	}
	return r.pay.Handle(ctx, cmd)
}

// Dispatch lets the parcel leave from location and starts tracking it.
func (r *Registry) Dispatch(ctx context.Context, id kernel.ParcelID, location string) error {
	cmd, err := commands.NewDispatchParcelCommand(id, location)
	if err != nil {
		return err
	}
	return r.dispatch.Handle(ctx, cmd)
}

// Track returns the parcel's location to its sender.
func (r *Registry) Track(ctx context.Context, id kernel.ParcelID, requesterPhone uint64) (queries.TrackingView, error) {
	query, err := queries.NewTrackParcelQuery(id, requesterPhone)
	if err != nil {
		return queries.TrackingView{}, err
	}
	return r.track.Handle(ctx, query)
}

func (r *Registry) UpdateLocation(ctx context.Context, id kernel.ParcelID, location string, arrived bool) error {
	cmd, err := commands.NewUpdateTrackerLocationCommand(id, location, arrived)
	if err != nil {
		return err
	}
	return r.moveTracker.Handle(ctx, cmd)
}

// DispatchPaid dispatches up to batchSize parcels that pass the gate and
// returns how many left.
func (r *Registry) DispatchPaid(ctx context.Context, location string, batchSize int) (int, error) {
	cmd, err := commands.NewDispatchPaidParcelsCommand(location, batchSize)
	if err != nil {
		return 0, err
	}
	return r.dispatchPaid.Handle(ctx, cmd)
}

func (r *Registry) GetParcel(ctx context.Context, id kernel.ParcelID) (queries.GetParcelQueryResponse, error) {
	query, err := queries.NewGetParcelQuery(id)
	if err != nil {
		return queries.GetParcelQueryResponse{}, err
	}
	return r.getParcel.Handle(ctx, query)
}

func (r *Registry) ListPayments(ctx context.Context, id kernel.ParcelID) ([]queries.ListPaymentsQueryResponse, error) {
	query, err := queries.NewListPaymentsQuery(id)
	if err != nil {
		return nil, err
	}
	return r.listPayments.Handle(ctx, query)
}
