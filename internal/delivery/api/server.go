// Package api hosts the echo HTTP server for the dashboard and public API.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/Ulrich-Yao/website/config"
	"github.com/Ulrich-Yao/website/internal/delivery"
	apimiddleware "github.com/Ulrich-Yao/website/internal/delivery/api/middleware"
	"github.com/Ulrich-Yao/website/internal/delivery/api/router"
	"github.com/Ulrich-Yao/website/internal/delivery/api/validator"
	"github.com/Ulrich-Yao/website/internal/delivery/middleware"
	"github.com/Ulrich-Yao/website/internal/domain/lifecycle"
	"github.com/Ulrich-Yao/website/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the echo server with the full middleware chain and
// mounted routes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Middleware order matters: recover first, then request id so the
	// logger and handlers see it.
	echoServer.Use(echomiddleware.Recover())

	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)

	echoServer.Use(echomiddleware.CORS())

	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	errorMiddleware := apimiddleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)
	r.RegisterAdminPages(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
