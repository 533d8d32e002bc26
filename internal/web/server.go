// Package web serves the journaling page, its JSON API, and the health and
// metrics endpoints.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"

	"github.com/alnah/journal-companion/internal/guidance"
	"github.com/alnah/journal-companion/internal/metrics"
)

// Server limits.
const (
	maxBodyBytes      = 64 << 10
	readHeaderTimeout = 10 * time.Second
)

// emptyInputWarning is shown when the user submits no text.
const emptyInputWarning = "Please enter your thoughts before getting guidance."

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// Guide answers one guidance request. *guidance.Service implements it.
type Guide interface {
	Get(ctx context.Context, modeID, userText string) guidance.Result
}

// Server is the journaling HTTP server.
type Server struct {
	httpServer *http.Server
	guide      Guide
	metrics    *metrics.Metrics
	logger     *slog.Logger
	md         goldmark.Markdown
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and lifecycle logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics exposes m on /metrics and counts rejected empty submissions.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewServer creates a server listening on addr once started.
func NewServer(addr string, guide Guide, opts ...Option) *Server {
	s := &Server{
		guide:  guide,
		logger: slog.New(slog.DiscardHandler),
		md:     newMarkdown(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxBodyBytes))

	// Page
	r.Get("/", s.handleIndex)
	r.Post("/", s.handleSubmit)

	// API
	r.Post("/api/guidance", s.handleGuidance)
	r.Get("/api/modes", s.handleModes)
	r.Get("/healthz", s.handleHealth)

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	return r
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// ListenAndServe listens on the configured address and serves until
// Shutdown is called. It returns nil after a graceful shutdown.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("journal companion listening", "addr", ln.Addr().String())
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
