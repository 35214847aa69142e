package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/agbru/bigshift/internal/bignum"
	apperrors "github.com/agbru/bigshift/internal/errors"
	"github.com/agbru/bigshift/internal/logging"
)

//go:generate mockgen -source=server.go -destination=mocks/mock_shifter.go -package=mocks

// Shifter performs an in-place left shift. bignum.ShiftLeft satisfies it
// through ShifterFunc.
type Shifter interface {
	ShiftLeft(z *bignum.Nat, s uint) error
}

// ShifterFunc adapts a function to the Shifter interface.
type ShifterFunc func(z *bignum.Nat, s uint) error

// ShiftLeft calls f(z, s).
func (f ShifterFunc) ShiftLeft(z *bignum.Nat, s uint) error { return f(z, s) }

// Default timeouts.
const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

var tracer = otel.Tracer("github.com/agbru/bigshift/internal/server")

// Config configures a Server.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Security        SecurityConfig
	// Version and VersionNumber are reported by GET /version.
	Version       string
	VersionNumber uint32
}

// DefaultConfig returns a Config listening on addr with default timeouts.
func DefaultConfig(addr string) Config {
	return Config{
		Addr:            addr,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		IdleTimeout:     DefaultIdleTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		Security:        DefaultSecurityConfig(),
	}
}

// Server is the HTTP front end of the shift engine.
type Server struct {
	config  Config
	shifter Shifter
	logger  logging.Logger
	metrics *Metrics
}

// Option customizes a Server.
type Option func(*Server)

// WithShifter replaces the shift implementation, mainly for tests.
func WithShifter(sh Shifter) Option {
	return func(s *Server) { s.shifter = sh }
}

// WithLogger sets the server logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// New builds a Server from cfg.
func New(cfg Config, opts ...Option) *Server {
	if cfg.Security.MaxBodyBytes <= 0 {
		cfg.Security.MaxBodyBytes = DefaultMaxBodyBytes
	}
	s := &Server{
		config:  cfg,
		shifter: ShifterFunc(bignum.ShiftLeft),
		logger:  logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	return s
}

// Handler returns the fully wrapped request router.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.route(mux, "/v1/shift", s.handleShift)
	s.route(mux, "/version", s.handleVersion)
	s.route(mux, "/health", s.handleHealth)
	s.route(mux, "/metrics", s.handleMetrics)
	return mux
}

func (s *Server) route(mux *http.ServeMux, path string, h http.HandlerFunc) {
	mux.HandleFunc(path, SecurityMiddleware(s.config.Security, s.metricsMiddleware(h)))
}

// Start listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return apperrors.WrapError(err, "listen on %s", s.config.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("shutting down server", logging.Duration("timeout", timeout))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return apperrors.WrapError(err, "server shutdown")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next(rec, r)
		s.metrics.ObserveRequest(r.URL.Path, rec.code, time.Since(start).Seconds())
	}
}
