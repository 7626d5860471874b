// Package gin provides the HTTP API server for the page retrieval service.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/webread"
	"github.com/gin-gonic/gin"
)

// DefaultAddr is the default listen address.
const DefaultAddr = ":8000"

// DefaultShutdownTimeout bounds how long in-flight requests may drain after
// the server is asked to stop.
const DefaultShutdownTimeout = 10 * time.Second

// Server serves the retrieval API over HTTP.
type Server struct {
	engine  *gin.Engine
	service webread.PageService
	config  webread.Config
	logger  *slog.Logger

	addr            string
	shutdownTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithShutdownTimeout sets the graceful shutdown timeout.
// Defaults to DefaultShutdownTimeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// New creates a Server routing requests to the given service.
func New(service webread.PageService, config webread.Config, logger *slog.Logger, opts ...Option) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		service:         service,
		config:          config,
		logger:          logger,
		addr:            DefaultAddr,
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/healthz", s.handleHealthz)
	engine.POST("/search", s.handleSearch)
	s.engine = engine

	return s
}

// Handler exposes the routing engine. Used in tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the listener and blocks until ctx is cancelled or the listener
// fails. On cancellation, in-flight requests drain within the shutdown
// timeout.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down http server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// searchRequest is the inbound /search body. N is a pointer so an absent
// field can default without making 0 ambiguous.
type searchRequest struct {
	Q       string `json:"q"`
	URL     string `json:"url"`
	Context string `json:"search_context"`
	N       *int   `json:"n"`
}

// searchResponse wraps the result set for the wire.
type searchResponse struct {
	Results []*webread.Page `json:"results"`
}

func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}

	query := &webread.Query{
		Q:         req.Q,
		URL:       req.URL,
		Context:   req.Context,
		N:         webread.DefaultN,
		SearchKey: c.GetHeader("X-Brave-Search-API-Key"),
	}
	if req.N != nil {
		query.N = *req.N
	}

	pages, err := s.service.SearchPages(c.Request.Context(), query)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"detail": webread.ErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, searchResponse{Results: pages})
}

// statusFromError maps a domain error code to an HTTP status. Upstream
// errors relay the collaborator's recorded status so callers can tell a
// provider rejection from our own.
func statusFromError(err error) int {
	switch webread.ErrorCode(err) {
	case webread.EINVALID:
		return http.StatusBadRequest
	case webread.EUNAUTHORIZED:
		return http.StatusForbidden
	case webread.ENOTFOUND:
		return http.StatusNotFound
	case webread.EUPSTREAM:
		if status := webread.ErrorStatus(err); status != 0 {
			return status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
