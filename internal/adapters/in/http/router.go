package http

import (
	"log/slog"

	"github.com/LONJEZ/Delivery-app/api"
	"github.com/LONJEZ/Delivery-app/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the registry API, its health
// check and the swagger UI at /swagger/.
func NewRouter(registry ParcelRegistry, verifier TokenVerifier, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = api.RegisterSwagger(doc); err != nil {
		return nil, err
	}

	validator, err := openAPIValidator(doc, verifier)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(validator)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlers(e, NewServer(registry, logger))

	return e, nil
}
