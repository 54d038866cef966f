package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	agentHTTP "reservation-agent/internal/agent/delivery/http"
	"reservation-agent/internal/middleware"
	reservationHTTP "reservation-agent/internal/reservation/delivery/http"
	"reservation-agent/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Agent domain
	agentHandler agentHTTP.Handler

	// Reservation domain, only when this process owns the booking store
	reservationHandler reservationHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Config

	AgentHandler       agentHTTP.Handler
	ReservationHandler reservationHTTP.Handler
}

// New creates a new HTTPServer instance with every route mounted.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		shutdownTimeout:    cfg.ShutdownTimeout,
		agentHandler:       cfg.AgentHandler,
		reservationHandler: cfg.ReservationHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, cfg.Middleware)
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.agentHandler == nil {
		return errors.New("agent handler is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
