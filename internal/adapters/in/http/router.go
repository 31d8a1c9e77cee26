package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded OpenAPI document to swag.
type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

var (
	registerDocOnce = new(sync.Once)
	registerDocErr  error

	loadOpenAPIDoc = servers.GetSwagger
)

// registerDoc makes the OpenAPI document available under /swagger/doc.json.
// swag keeps a process-wide registry, so registration happens once and every
// later call reports the outcome of that first attempt.
func registerDoc() error {
	registerDocOnce.Do(func() {
		spec, err := loadOpenAPIDoc()
		if err != nil {
			registerDocErr = fmt.Errorf("load openapi document: %w", err)
			return
		}

		raw, err := json.Marshal(spec)
		if err != nil {
			registerDocErr = fmt.Errorf("marshal openapi document: %w", err)
			return
		}

		swag.Register(swag.Name, openAPIDoc{doc: string(raw)})
	})
	return registerDocErr
}

// NewRouter builds the echo instance with the API routes, /health and /swagger.
func NewRouter(server *Server, logger zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)

	reqLog := logger.With().Str("component", "http").Logger()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			reqLog.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if err := registerDoc(); err != nil {
		return nil, err
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
