// Package httpapi exposes the public JSON/HTTP surface: wallet
// authentication, the post feed and the like toggle. Handlers validate
// request bodies at the boundary and translate service errors into a stable
// error taxonomy; no raw internal error ever reaches a client.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/solsocial/internal/logging"
	"github.com/dmitrijs2005/solsocial/internal/server/config"
	"github.com/dmitrijs2005/solsocial/internal/server/posts"
	"github.com/dmitrijs2005/solsocial/internal/server/users"
)

type Server struct {
	address    string
	users      *users.Service
	posts      *posts.Service
	logger     logging.Logger
	jwtSecret  []byte
	corsOrigin string
	limiter    *RateLimiter
}

func NewServer(cfg *config.Config, logger logging.Logger, us *users.Service, ps *posts.Service) (*Server, error) {
	return &Server{
		address:    cfg.EndpointAddrHTTP,
		users:      us,
		posts:      ps,
		logger:     logger.With("module", "http_server"),
		jwtSecret:  []byte(cfg.SecretKey),
		corsOrigin: cfg.CORSAllowedOrigin,
		limiter:    NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}, nil
}

// Handler assembles the route table with per-route middleware. Exposed for
// tests; Run wraps it with the global middleware stack.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /auth/challenge", s.handleChallenge)
	mux.Handle("POST /auth/wallet", s.limiter.Middleware(http.HandlerFunc(s.handleWalletAuth)))

	mux.HandleFunc("GET /posts", s.handleListPosts)
	mux.Handle("POST /posts", s.limiter.Middleware(s.requireAuth(s.handleCreatePost)))
	mux.Handle("POST /posts/{id}/like", s.requireAuth(s.handleToggleLike))

	return s.withLogging(s.withCORS(mux))
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		s.limiter.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
