// Package ops serves the console's local observability endpoint: liveness,
// readiness against the remote storefront API, and Prometheus metrics. It is
// only started for long-running (interactive) sessions.
package ops

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Pinger reports whether the remote API is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter builds the Echo instance with all ops routes registered.
func NewRouter(pinger Pinger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("console_ops"))

	e.GET("/health", liveness)
	e.GET("/health/ready", readiness(pinger))
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// Server runs the ops router on a local address.
type Server struct {
	echo *echo.Echo
	log  zerolog.Logger
}

func NewServer(pinger Pinger, log zerolog.Logger) *Server {
	return &Server{
		echo: NewRouter(pinger),
		log:  log.With().Str("component", "ops").Logger(),
	}
}

// Start serves on addr without blocking. Call Shutdown to stop.
func (s *Server) Start(addr string) {
	go func() {
		s.log.Info().Str("addr", addr).Msg("ops endpoint listening")
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("ops endpoint failed")
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// readiness reports degraded when the storefront API cannot be reached. An
// authentication failure still counts as reachable.
func readiness(pinger Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		deps := make(map[string]dependencyStatus)
		status := "ok"
		httpStatus := http.StatusOK

		if err := pinger.Ping(ctx); err != nil {
			deps["storefront_api"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		} else {
			deps["storefront_api"] = dependencyStatus{Status: "ok"}
		}

		return c.JSON(httpStatus, readinessResponse{Status: status, Dependencies: deps})
	}
}
