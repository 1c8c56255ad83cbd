package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/services"
	"github.com/LONJEZ/Delivery-app/internal/generated/servers"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a registry error to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, parcel.ErrPaymentPending), errors.Is(err, parcel.ErrAlreadyDispatched):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusForbidden
	case errs.IsInvalidInput(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and their
// text is not sent to the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// errorHandler renders errors returned by middleware and routing, such as
// echo.HTTPError, in the same Error body the handlers use.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.Error("unhandled error", "error", err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}
