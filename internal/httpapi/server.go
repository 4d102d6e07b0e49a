// Package httpapi serves the message codec over HTTP for inspection tools.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lydakis/dapx/dap"
	"github.com/lydakis/dapx/internal/render"
	"github.com/sirupsen/logrus"
)

// Options tunes the HTTP server.
type Options struct {
	// BodyLimit caps request bodies, in gommon/bytes notation ("1M").
	BodyLimit       string
	ShutdownTimeout time.Duration
}

// Server exposes decode, normalize and catalog endpoints.
type Server struct {
	codec  dap.Codec
	logger *logrus.Logger
	opts   Options
}

// DecodeResult is the body of a successful POST /v1/decode.
type DecodeResult struct {
	render.Summary
	Message json.RawMessage `json:"message"`
}

// ErrorResult is returned with 422 when a message does not decode or encode.
type ErrorResult struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Path  string `json:"path,omitempty"`
}

// Catalog lists the closed message catalogs.
type Catalog struct {
	Requests []string `json:"requests"`
	Events   []string `json:"events"`
}

// NewServer creates a server that decodes and encodes with codec.
func NewServer(codec dap.Codec, logger *logrus.Logger, opts Options) *Server {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return &Server{codec: codec, logger: logger, opts: opts}
}

// Echo builds the echo instance with middleware and routes registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := s.logger.WithFields(logrus.Fields{
				"requestId": v.RequestID,
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("Request failed")
				return nil
			}
			entry.Info("Request handled")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	if s.opts.BodyLimit != "" {
		e.Use(middleware.BodyLimit(s.opts.BodyLimit))
	}

	s.RegisterRoutes(e)
	return e
}

// RegisterRoutes adds the API routes to e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)
	e.GET("/v1/catalog", s.handleCatalog)
	e.POST("/v1/decode", s.handleDecode)
	e.POST("/v1/normalize", s.handleNormalize)
}

// ListenAndServe listens on addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	e := s.Echo()
	e.Listener = ln

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", ln.Addr().String()).Info("Starting server")
		errCh <- e.Start("")
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		s.logger.WithError(err).Error("Failed to gracefully shutdown server")
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	s.logger.Info("Server shutdown complete")
	return nil
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(c echo.Context) error {
	catalog := Catalog{Requests: dap.RequestCommands(), Events: dap.EventNames()}
	switch kind := c.QueryParam("kind"); kind {
	case "":
	case "requests":
		catalog.Events = nil
	case "events":
		catalog.Requests = nil
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown catalog kind %q", kind)})
	}
	return c.JSON(http.StatusOK, catalog)
}

func (s *Server) handleDecode(c echo.Context) error {
	inspect := s.codec
	inspect.CheckHandles = false
	env, data, err := roundTrip(c, inspect)
	if err != nil {
		return s.decodeFailure(c, err)
	}
	return c.JSON(http.StatusOK, DecodeResult{Summary: render.Describe(env), Message: data})
}

func (s *Server) handleNormalize(c echo.Context) error {
	_, data, err := roundTrip(c, s.codec)
	if err != nil {
		return s.decodeFailure(c, err)
	}
	return c.JSONBlob(http.StatusOK, data)
}

// roundTrip decodes the request body and re-encodes it with codec.
func roundTrip(c echo.Context, codec dap.Codec) (*dap.Envelope, []byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, nil, err
	}
	env, err := codec.Decode(body)
	if err != nil {
		return nil, nil, err
	}
	data, err := codec.Encode(env)
	if err != nil {
		return nil, nil, err
	}
	return env, data, nil
}

func (s *Server) decodeFailure(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	s.logger.WithFields(logrus.Fields{
		"requestId": c.Response().Header().Get(echo.HeaderXRequestID),
		"kind":      dap.ErrorKind(err),
		"path":      dap.ErrorPath(err),
	}).Debug("Rejected message")

	return c.JSON(http.StatusUnprocessableEntity, ErrorResult{
		Error: err.Error(),
		Kind:  dap.ErrorKind(err),
		Path:  dap.ErrorPath(err),
	})
}
