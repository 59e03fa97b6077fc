package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/krau/SiteLens/pkg/display"
	"github.com/krau/SiteLens/pkg/widget"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

type Options struct {
	Token      string
	TrustedIPs []string
	RateLimit  float64 // requests per second, <= 0 disables limiting
	RateBurst  int
}

type Server struct {
	opts    Options
	widget  *widget.Widget
	fetcher widget.Fetcher
	mapper  widget.Mapper
	limiter *rate.Limiter
	group   singleflight.Group
}

func NewServer(fetcher widget.Fetcher, mapper widget.Mapper, opts Options) *Server {
	if mapper == nil {
		mapper = display.NewMapper()
	}
	s := &Server{
		opts:    opts,
		widget:  widget.New(fetcher, mapper),
		fetcher: fetcher,
		mapper:  mapper,
	}
	if opts.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), max(1, opts.RateBurst))
	}
	return s
}

// Handler returns the routes wrapped with the middleware chain.
func (s *Server) Handler(logger *log.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("GET /api/v1/overview", s.handleOverview)
	mux.HandleFunc("GET /api/v1/widget", s.handleGetWidget)
	mux.HandleFunc("POST /api/v1/widget", s.handleSubmitWidget)

	return loggingMiddleware(logger)(authMiddleware(s.opts.Token, s.opts.TrustedIPs)(rateLimitMiddleware(s.limiter)(mux)))
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	logger := log.FromContext(ctx).WithPrefix("api")
	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting API server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Failed to shutdown API server: %v", err)
		return err
	}
	logger.Info("API server stopped")
	return nil
}
