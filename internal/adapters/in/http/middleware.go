package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/LONJEZ/Delivery-app/internal/generated/servers"
	"github.com/LONJEZ/Delivery-app/internal/pkg/auth"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TokenVerifier checks operator bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

var errMissingBearer = errors.New("missing bearer token")

// openAPIValidator rejects requests the document does not allow. Operations
// declaring bearerAuth are authenticated through verifier; a request without
// a valid operator token gets 401. Paths outside the document pass through.
func openAPIValidator(doc *openapi3.T, verifier TokenVerifier) (echo.MiddlewareFunc, error) {
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: func(_ context.Context, input *openapi3filter.AuthenticationInput) error {
			return authenticate(verifier, input.RequestValidationInput.Request)
		},
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}

			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				var securityErr *openapi3filter.SecurityRequirementsError
				if errors.As(validationErr, &securityErr) {
					return ctx.JSON(http.StatusUnauthorized, servers.Error{
						Code:    http.StatusUnauthorized,
						Message: "operator token required",
					})
				}

				var requestErr *openapi3filter.RequestError
				if errors.As(validationErr, &requestErr) {
					return badRequest(ctx, strings.SplitN(requestErr.Error(), "\n", 2)[0])
				}

				return badRequest(ctx, validationErr.Error())
			}

			return next(ctx)
		}
	}, nil
}

func authenticate(verifier TokenVerifier, req *http.Request) error {
	header := req.Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return errMissingBearer
	}

	_, err := verifier.Verify(token)
	return err
}

// requestLogger logs one slog line per request.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(ctx.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
