package http

import (
	"log/slog"
	"net/http"
	"sync"

	"fulfillment/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

// NewRouter builds the echo instance: health probe, Swagger UI and the
// validated API routes under BasePath.
func NewRouter(server *Server, doc *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	validator, err := requestValidator(doc, BasePath)
	if err != nil {
		return nil, err
	}

	if err = registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger.With("component", "http")))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BasePath, validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}

// openAPIDoc serves the OpenAPI document through the swag registry.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

var swaggerOnce sync.Once

func registerSwagger(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	swaggerOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{json: string(raw)})
	})

	return nil
}
