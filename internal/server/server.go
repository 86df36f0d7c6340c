// internal/server/server.go
package server

import (
	"context"
	"fmt"
	"time"

	"trip-planner/internal/common/config"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/pipeline"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the trip-planning pipeline over HTTP.
type Server struct {
	echo   *echo.Echo
	config *config.Config
	logger logger.Logger
}

// New builds the echo server with the plan-trip, chat, health and metrics
// routes registered.
func New(cfg *config.Config, runner *pipeline.Runner, log logger.Logger) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	h := newHandler(runner, log)

	e.POST("/plan-trip", h.PlanTrip)
	e.POST("/chat", h.Chat)
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return &Server{
		echo:   e,
		config: cfg,
		logger: log.WithFields(map[string]interface{}{"component": "server"}),
	}
}

// Start blocks serving HTTP until shutdown. Synchronous pipeline runs are
// slow, so the write timeout follows the configured request timeout.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Server.Port)
	s.echo.Server.ReadHeaderTimeout = 10 * time.Second
	s.echo.Server.WriteTimeout = config.GetDuration(s.config.Server.RequestTimeout)
	s.logger.Info("starting HTTP server", map[string]interface{}{"addr": addr})
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.echo.Shutdown(ctx)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
