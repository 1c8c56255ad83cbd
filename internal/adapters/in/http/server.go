// Package http exposes the parcel registry over HTTP with echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/LONJEZ/Delivery-app/internal/core/application/usecases/commands"
	"github.com/LONJEZ/Delivery-app/internal/core/application/usecases/queries"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ParcelRegistry is the application surface the server drives.
type ParcelRegistry interface {
	Register(ctx context.Context, details commands.ParcelDetails) (kernel.ParcelID, error)
	Pay(ctx context.Context, id kernel.ParcelID, deposit kernel.Deposit) (parcel.PaymentOutcome, error)
	Dispatch(ctx context.Context, id kernel.ParcelID, location string) error
	Track(ctx context.Context, id kernel.ParcelID, requesterPhone uint64) (queries.TrackingView, error)
	UpdateLocation(ctx context.Context, id kernel.ParcelID, location string, arrived bool) error
	GetParcel(ctx context.Context, id kernel.ParcelID) (queries.GetParcelQueryResponse, error)
	ListPayments(ctx context.Context, id kernel.ParcelID) ([]queries.ListPaymentsQueryResponse, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of a ParcelRegistry.
// Operator-only routes are guarded before a request reaches it.
type Server struct {
	registry ParcelRegistry
	logger   *slog.Logger
}

func NewServer(registry ParcelRegistry, logger *slog.Logger) *Server {
	return &Server{
		registry: registry,
		logger:   logger.With("component", "http"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// RegisterParcel handles POST /api/v1/parcels.
func (s *Server) RegisterParcel(ctx echo.Context) error {
	var body servers.RegisterParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := s.registry.Register(ctx.Request().Context(), commands.ParcelDetails{
		SenderName:     body.Sender.Name,
		SenderPhone:    body.Sender.Phone,
		ReceiverName:   body.Receiver.Name,
		ReceiverPhone:  body.Receiver.Phone,
		DeliveryCharge: body.DeliveryCharge,
		Destination:    body.Destination,
		IsFragile:      body.IsFragile,
		DateSent:       body.DateSent,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ParcelCreated{Id: id.Uint64()})
}

// GetParcel handles GET /api/v1/parcels/{parcelId}.
func (s *Server) GetParcel(ctx echo.Context, parcelId servers.ParcelId) error {
	id, err := kernel.NewParcelID(parcelId)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.registry.GetParcel(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Parcel{
		Id:             p.ID,
		Sender:         servers.Contact{Name: p.SenderName, Phone: p.SenderPhone},
		Receiver:       servers.Contact{Name: p.ReceiverName, Phone: p.ReceiverPhone},
		DeliveryCharge: p.DeliveryCharge,
		Destination:    p.Destination,
		IsFragile:      p.IsFragile,
		DateSent:       p.DateSent,
		DateReceived:   p.DateReceived,
		IsReceived:     p.IsReceived,
		Status:         servers.ParcelStatus(p.Status.String()),
	})
}

// PayParcel handles POST /api/v1/parcels/{parcelId}/payments.
func (s *Server) PayParcel(ctx echo.Context, parcelId servers.ParcelId) error {
	var body servers.PayParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.NewParcelID(parcelId)
	if err != nil {
		return s.fail(ctx, err)
	}

	deposit, err := kernel.DepositFromString(body.Amount)
	if err != nil {
		return s.fail(ctx, err)
	}

	outcome, err := s.registry.Pay(ctx.Request().Context(), id, deposit)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.PaymentOutcome{
		Applied:          outcome.Applied.Uint64(),
		Remaining:        outcome.Remaining.Uint64(),
		ReadyForDispatch: outcome.ReadyForDispatch(),
	})
}

// ListPayments handles GET /api/v1/parcels/{parcelId}/payments.
func (s *Server) ListPayments(ctx echo.Context, parcelId servers.ParcelId) error {
	id, err := kernel.NewParcelID(parcelId)
	if err != nil {
		return s.fail(ctx, err)
	}

	payments, err := s.registry.ListPayments(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Payment, len(payments))
	for i, p := range payments {
		response[i] = servers.Payment{
			Id:        p.ID.Bytes(),
			Amount:    p.Deposit,
			Applied:   p.Applied,
			Remaining: p.Remaining,
			CreatedAt: p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DispatchParcel handles POST /api/v1/parcels/{parcelId}/dispatch.
func (s *Server) DispatchParcel(ctx echo.Context, parcelId servers.ParcelId) error {
	var body servers.DispatchParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.NewParcelID(parcelId)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.registry.Dispatch(ctx.Request().Context(), id, body.Location); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateLocation handles PUT /api/v1/parcels/{parcelId}/location.
func (s *Server) UpdateLocation(ctx echo.Context, parcelId servers.ParcelId) error {
	var body servers.UpdateLocationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.NewParcelID(parcelId)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.registry.UpdateLocation(ctx.Request().Context(), id, body.Location, body.HasArrived); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackParcel handles GET /api/v1/parcels/{parcelId}/tracking.
func (s *Server) TrackParcel(ctx echo.Context, parcelId servers.ParcelId, params servers.TrackParcelParams) error {
	id, err := kernel.NewParcelID(parcelId)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.registry.Track(ctx.Request().Context(), id, params.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Tracking{
		Location:   view.Location,
		HasArrived: view.HasArrived,
	})
}
