package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Server is an echo-backed HTTP server whose error responses carry the
// reason phrase of their status.
type Server struct {
	app      *App
	address  string
	shutdown time.Duration
}

func NewServer(opts ...ServerOption) *Server {
	cfg := defaultServerConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	app := newApp()
	e := app.e
	e.HTTPErrorHandler = echo.HTTPErrorHandler(cfg.ErrorHandler)
	if cfg.Logger != nil {
		e.Logger = cfg.Logger
	}
	e.Logger.SetLevel(cfg.LogLevel)
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	e.Use(cfg.Middlewares...)
	if prefix := strings.Trim(cfg.StatusPrefix, "/"); prefix != "" {
		StatusRoutes(app.Group("/" + prefix))
	}

	return &Server{app: app, address: cfg.Address, shutdown: 5 * time.Second}
}

// Mount hands the server's App to fn so it can add routes.
func (s *Server) Mount(fn func(*App)) {
	if fn != nil {
		fn(s.app)
	}
}

func (s *Server) Handler() http.Handler { return s.app.e }

func (s *Server) Logger() echo.Logger { return s.app.e.Logger }

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	e := s.app.e
	srv := &http.Server{
		Addr:         s.address,
		Handler:      e,
		ReadTimeout:  e.Server.ReadTimeout,
		WriteTimeout: e.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		e.Logger.Infof("httpx: listening on %s", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			e.Logger.Warnf("httpx: shutdown: %v", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
