package http

import (
	"log/slog"
	"net/http"
	"strings"

	"fulfillment/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// requestValidator checks requests under basePath against the OpenAPI document.
// Requests for paths the document does not describe are passed through.
func requestValidator(doc *openapi3.T, basePath string) (echo.MiddlewareFunc, error) {
	routed := *doc
	routed.Servers = nil

	router, err := legacyrouter.NewRouter(&routed)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			scoped := req.Clone(req.Context())
			scoped.URL.Path = strings.TrimPrefix(req.URL.Path, basePath)
			scoped.URL.RawPath = ""

			route, pathParams, findErr := router.FindRoute(scoped)
			if findErr != nil {
				return next(c)
			}

			err := openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    scoped,
				PathParams: pathParams,
				Route:      route,
			})
			// The validator consumes the body and leaves a rewound copy on scoped.
			req.Body = scoped.Body
			if err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			return next(c)
		}
	}, nil
}

// requestLogger writes one structured line per request.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}

			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
