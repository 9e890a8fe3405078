// Package web serves the portfolio over HTTP: full pages, HTMX fragments,
// static assets, health and metrics.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/navstate"
	"github.com/Zachkp/portfolio/internal/portfolio"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/theme"
)

const defaultShutdownTimeout = 10 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the handlers use.
type Deps struct {
	Store    *content.Store
	Profile  *portfolio.Profile
	Renderer *render.Renderer
	Contact  *contact.Service
	Theme    *theme.Provider
	// Metrics is optional; /metrics is only mounted when set.
	Metrics *metrics.Metrics
	// Prefs is optional and only used by the health check.
	Prefs  Pinger
	Logger logger.Logger

	SiteName  string
	StaticDir string
	Version   string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Options configure the HTTP server.
type Options struct {
	Port            int
	Debug           bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Handler holds the route handlers.
type Handler struct {
	deps      Deps
	blogs     navstate.Synchronizer
	startedAt time.Time
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(deps Deps) (*gin.Engine, error) {
	if deps.Store == nil {
		return nil, errors.New("web: content store is required")
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}
	if deps.Profile == nil {
		deps.Profile = portfolio.Default()
	}
	if deps.Renderer == nil {
		deps.Renderer = render.New("")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.SiteName == "" {
		deps.SiteName = deps.Profile.Name
	}
	if deps.Contact == nil {
		deps.Contact = contact.NewService(contact.NewSender(contact.Options{}), deps.Logger, nil)
	}

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	router.Use(RecoveryMiddleware(deps.Logger))
	router.Use(LoggerMiddleware(deps.Logger))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}
	router.Use(VisitorMiddleware())

	h := &Handler{
		deps:      deps,
		blogs:     navstate.New("/blogs"),
		startedAt: deps.Now(),
	}
	h.routes(router)
	return router, nil
}

func (h *Handler) routes(r *gin.Engine) {
	if h.deps.StaticDir != "" {
		r.Static("/static", h.deps.StaticDir)
	}

	r.GET("/", h.home)
	r.GET("/work-content", h.workContent)
	r.GET("/education-content", h.educationContent)

	blogs := r.Group("/blogs")
	blogs.GET("", h.blogIndex)
	blogs.GET("/list", h.blogList)
	blogs.POST("/category", h.blogCategory)
	blogs.POST("/clear", h.blogClear)
	blogs.GET("/:id", h.blogDetail)
	blogs.GET("/:id/open", h.blogOpen)

	r.GET("/projects/:id", h.projectDetail)

	r.GET("/contact", h.contactPage)
	r.GET("/contact-form", h.contactForm)
	r.POST("/contact", h.contactSubmit)

	r.POST("/theme/toggle", h.themeToggle)

	r.GET("/healthz", h.health)
	if h.deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.deps.Metrics.Handler()))
	}

	r.NoRoute(h.notFound)
}

// Server is the HTTP server with lifecycle management.
type Server struct {
	router *gin.Engine
	server *http.Server
	logger logger.Logger
	opts   Options
}

// NewServer creates the server. gin runs in release mode unless opts.Debug.
func NewServer(opts Options, deps Deps) (*Server, error) {
	if opts.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}

	router, err := NewRouter(deps)
	if err != nil {
		return nil, err
	}

	return &Server{
		router: router,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", opts.Port),
			Handler:      router,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
			IdleTimeout:  opts.IdleTimeout,
		},
		logger: deps.Logger,
		opts:   opts,
	}, nil
}

// Router returns the underlying gin engine.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start serves until the server is shut down.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		logger.String("address", s.server.Addr),
		logger.Duration("read_timeout", s.server.ReadTimeout),
		logger.Duration("write_timeout", s.server.WriteTimeout),
	)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server", logger.Duration("timeout", s.opts.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(ctx, s.opts.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	s.logger.Info("HTTP server stopped gracefully")
	return nil
}

// RunWithGracefulShutdown serves until SIGINT, SIGTERM or ctx is done, then
// shuts down.
func (s *Server) RunWithGracefulShutdown(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		s.logger.Info("Shutdown signal received", logger.String("signal", sig.String()))
	case <-ctx.Done():
		s.logger.Info("Context cancelled, shutting down")
	}

	// ctx may already be cancelled.
	return s.Shutdown(context.Background())
}
