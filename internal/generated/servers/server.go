package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	Health(ctx echo.Context) error
	// (POST /api/v1/parcels)
	RegisterParcel(ctx echo.Context) error
	// (GET /api/v1/parcels/{parcelId})
	GetParcel(ctx echo.Context, parcelId ParcelId) error
	// (POST /api/v1/parcels/{parcelId}/payments)
	PayParcel(ctx echo.Context, parcelId ParcelId) error
	// (GET /api/v1/parcels/{parcelId}/payments)
	ListPayments(ctx echo.Context, parcelId ParcelId) error
	// (POST /api/v1/parcels/{parcelId}/dispatch)
	DispatchParcel(ctx echo.Context, parcelId ParcelId) error
	// (PUT /api/v1/parcels/{parcelId}/location)
	UpdateLocation(ctx echo.Context, parcelId ParcelId) error
	// (GET /api/v1/parcels/{parcelId}/tracking)
	TrackParcel(ctx echo.Context, parcelId ParcelId, params TrackParcelParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Health(ctx echo.Context) error {
	return w.Handler.Health(ctx)
}

func (w *ServerInterfaceWrapper) RegisterParcel(ctx echo.Context) error {
	return w.Handler.RegisterParcel(ctx)
}

func (w *ServerInterfaceWrapper) GetParcel(ctx echo.Context) error {
	parcelId, err := bindParcelId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetParcel(ctx, parcelId)
}

func (w *ServerInterfaceWrapper) PayParcel(ctx echo.Context) error {
	parcelId, err := bindParcelId(ctx)
	if err != nil {
		return err
	}

	return w.Handler.PayParcel(ctx, parcelId)
}

func (w *ServerInterfaceWrapper) ListPayments(ctx echo.Context) error {
	parcelId, err := bindParcelId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ListPayments(ctx, parcelId)
}

func (w *ServerInterfaceWrapper) DispatchParcel(ctx echo.Context) error {
	parcelId, err := bindParcelId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.DispatchParcel(ctx, parcelId)
}

func (w *ServerInterfaceWrapper) UpdateLocation(ctx echo.Context) error {
	parcelId, err := bindParcelId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.UpdateLocation(ctx, parcelId)
}

func (w *ServerInterfaceWrapper) TrackParcel(ctx echo.Context) error {
	parcelId, err := bindParcelId(ctx)
	if err != nil {
		return err
	}

	var params TrackParcelParams
	err = runtime.BindQueryParameter("form", true, true, "phone", ctx.QueryParams(), &params.Phone)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter phone: %s", err))
	}

	return w.Handler.TrackParcel(ctx, parcelId, params)
}

func bindParcelId(ctx echo.Context) (ParcelId, error) {
	var parcelId ParcelId
	err := runtime.BindStyledParameterWithOptions("simple", "parcelId", ctx.Param("parcelId"), &parcelId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter parcelId: %s", err))
	}
	return parcelId, nil
}

// EchoRouter is the part of *echo.Echo and *echo.Group routes are added to.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/health", wrapper.Health)
	router.POST(baseURL+"/api/v1/parcels", wrapper.RegisterParcel)
	router.GET(baseURL+"/api/v1/parcels/:parcelId", wrapper.GetParcel)
	router.POST(baseURL+"/api/v1/parcels/:parcelId/payments", wrapper.PayParcel)
	router.GET(baseURL+"/api/v1/parcels/:parcelId/payments", wrapper.ListPayments)
	router.POST(baseURL+"/api/v1/parcels/:parcelId/dispatch", wrapper.DispatchParcel)
	router.PUT(baseURL+"/api/v1/parcels/:parcelId/location", wrapper.UpdateLocation)
	router.GET(baseURL+"/api/v1/parcels/:parcelId/tracking", wrapper.TrackParcel)
}
