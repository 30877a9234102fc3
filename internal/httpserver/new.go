package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"todo-web/config"
	"todo-web/internal/todo/repository"
	"todo-web/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	staticDir       string
	trustedProxies  []string

	// Todo domain
	todoRepo repository.Repository
	auth     config.AuthConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Host            string
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	StaticDir       string
	TrustedProxies  []string

	// Todo domain
	TodoRepository repository.Repository
	Auth           config.AuthConfig
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		host:            cfg.Host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		staticDir:       cfg.StaticDir,
		trustedProxies:  cfg.TrustedProxies,
		todoRepo:        cfg.TodoRepository,
		auth:            cfg.Auth,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// ClientIP keys the auth throttle, so forwarded headers are only
	// honoured from configured proxies.
	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todoRepo == nil {
		return errors.New("todo repository is required")
	}
	if err := srv.auth.ValidateAuth(); err != nil {
		return err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}
	return nil
}

// Handler exposes the underlying engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
