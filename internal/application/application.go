package application

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/dmarkov/homepage/internal/config"
	"github.com/dmarkov/homepage/internal/render"
	"github.com/dmarkov/homepage/internal/web"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	renderer *render.Renderer
	handler  *web.Handler
	router   http.Handler
	logger   *zap.Logger
	server   *http.Server
}

// New initializes the application with all dependencies from the provided
// configuration. Each call yields an independent instance with an identical
// route table. Resource directories are located but never read here; template
// parsing happens when a matching request arrives.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	templatesDir := resolveResourceDir(cfg.TemplatesDir)
	staticDir := resolveResourceDir(cfg.StaticDir)

	renderer := render.New(templatesDir)
	handler := web.NewHandler(renderer, logger)
	router := web.NewRouter(handler, staticDir, logger,
		web.WithLogging(cfg.EnableRequestLogging),
		web.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return &App{
		renderer: renderer,
		handler:  handler,
		router:   router,
		logger:   logger,
		server:   server,
	}, nil
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Router returns the root HTTP handler, primarily for in-process serving in tests.
func (a *App) Router() http.Handler {
	return a.router
}

// resolveResourceDir locates a resource directory relative to the project
// base by walking up the directory tree. Absolute paths pass through, and a
// directory that cannot be located is returned as configured so the failure
// surfaces per request rather than at construction.
func resolveResourceDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}

	base, err := os.Getwd()
	if err != nil {
		return dir
	}

	for {
		candidate := filepath.Join(base, dir)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(base)
		if parent == base {
			break
		}
		base = parent
	}

	return dir
}
