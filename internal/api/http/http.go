package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nuxtvisa/visa-portal/internal/apisrv/admin"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/auth"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/frontend"
	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/metrics"
	"github.com/nuxtvisa/visa-portal/internal/middleware"
	"github.com/nuxtvisa/visa-portal/log"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Pinger reports storage health for /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *auth.Server
	Frontend *frontend.Server
	Admin    *admin.Server
	Content  *content.Store
	Metrics  *metrics.Metrics
	Health   Pinger
}

// Router builds the full handler tree.
func (s *Server) Router(h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.ClientIdentifier)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Accept-Language"},
		ExposedHeaders:   []string{"Content-Language"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.Locale(h.Content))
	r.Use(h.Auth.WithSession)
	r.Use(log.RequestLogger(slog.Default()))
	if h.Metrics != nil {
		r.Use(h.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", h.Metrics.Handler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if h.Health != nil {
			if err := h.Health.Ping(r.Context()); err != nil {
				slog.Default().ErrorContext(r.Context(), "health check failed",
					slog.String("err", err.Error()),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Mount("/api/auth", h.Auth.Routes())
	r.Mount("/api/frontend", h.Frontend.Routes(h.Auth.RequireSession))
	r.Mount("/api/admin", h.Admin.Routes(h.Auth.RequireSession))

	return r
}

// CheckOrigin is the websocket origin policy; it matches the CORS policy.
func (s *Server) CheckOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if isOriginAllowed(origin, s.c.AllowedOrigins) {
		return true
	}
	slog.Default().InfoContext(r.Context(), "origin not allowed",
		slog.String("origin", origin),
	)
	return false
}

// Start starts the server
func (s *Server) Start(ctx context.Context, h *Handlers) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Router(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("visa-portal new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop drains in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}

	return false
}
