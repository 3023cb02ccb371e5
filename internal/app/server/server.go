// Package server assembles the HTTP service from the configuration.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/config"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/handler"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/metrics"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/middleware"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/auth"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/classifier"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/llm"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/session"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/storage"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/seed"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"
)

const (
	templatesGlob = "templates/*"
	staticDir     = "resources"

	shutdownTimeout = 10 * time.Second
)

// Server owns the HTTP listener and every connection behind it.
type Server struct {
	cfg      *config.Config
	backend  *storage.Backend
	sessions *session.Store
	engine   *gin.Engine
}

// New connects to the configured backends and builds the router.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	backend, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	s := &Server{cfg: cfg, backend: backend}

	m := metrics.New()
	if cfg.OpenAI.APIKey == "" {
		log.Warn("OPENAI_API_KEY is not set, classification requests will fail")
	}
	client := llm.NewClient(llm.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	}, m)

	h := handler.NewHandler(backend.Store, classifier.New(client))

	s.sessions = enableSessions(h, cfg.Redis)

	var jwtSvc *auth.JWTService
	if cfg.JWT.Secret != "" {
		jwtSvc = auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.TokenTTL)
		h.Reseeder = seed.NewLoader(backend.Store, taxonomy.Data)
		log.Info("admin endpoints enabled")
	}

	s.engine = NewRouter(h, m, jwtSvc, templatesGlob, staticDir)

	log.WithFields(log.Fields{
		"driver": backend.Driver(),
		"model":  client.Model(),
	}).Info("server configured")

	return s, nil
}

// enableSessions attaches a redis session store to h when one is configured
// and reachable. Without it the service still runs, clients just carry
// their own conversation state.
func enableSessions(h *handler.Handler, cfg config.RedisConfig) *session.Store {
	if cfg.Host == "" {
		return nil
	}
	store, err := session.NewStore(cfg.Host, cfg.Port, cfg.Password, cfg.DB, cfg.SessionTTL)
	if err != nil {
		log.WithError(err).WithField("host", cfg.Host).Warn("redis unavailable, diagnosis sessions disabled")
		return nil
	}
	h.Sessions = store
	log.WithField("host", cfg.Host).Info("diagnosis sessions enabled")
	return store
}

// NewRouter mounts the middleware chain and all routes. Admin routes are
// only mounted when jwtSvc is not nil.
func NewRouter(h *handler.Handler, m *metrics.Metrics, jwtSvc *auth.JWTService, templates, static string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), m.Middleware())

	h.RegisterStatic(r, templates, static)
	h.RegisterHandler(r)
	if jwtSvc != nil {
		h.RegisterAdmin(r, middleware.AdminAuth(jwtSvc))
	}
	r.GET("/metrics", gin.WrapH(m.Handler()))

	return r
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests and
// closes the backends.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", srv.Addr).Info("server start up")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	s.close()
	log.Info("server down")
	return err
}

func (s *Server) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.sessions != nil {
		if err := s.sessions.Close(); err != nil {
			log.WithError(err).Warn("closing redis")
		}
	}
	if err := s.backend.Close(ctx); err != nil {
		log.WithError(err).Warn("closing store")
	}
}
