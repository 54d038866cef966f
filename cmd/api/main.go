package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reservation-agent/config"
	_ "reservation-agent/docs" // Swagger docs
	"reservation-agent/internal/agent"
	agentHTTP "reservation-agent/internal/agent/delivery/http"
	"reservation-agent/internal/agent/orchestrator"
	"reservation-agent/internal/agent/session"
	"reservation-agent/internal/agent/session/memory"
	sessionRedis "reservation-agent/internal/agent/session/redis"
	"reservation-agent/internal/agent/tools"
	"reservation-agent/internal/httpserver"
	"reservation-agent/internal/middleware"
	reservationHTTP "reservation-agent/internal/reservation/delivery/http"
	"reservation-agent/internal/reservation/repository"
	"reservation-agent/internal/reservation/repository/remote"
	"reservation-agent/internal/reservation/repository/sqlite"
	"reservation-agent/internal/reservation/usecase"
	"reservation-agent/pkg/gcalendar"
	"reservation-agent/pkg/llmprovider"
	"reservation-agent/pkg/log"
	pkgRedis "reservation-agent/pkg/redis"
)

// @title       Reservation Agent API
// @description Korean medical-appointment chat agent with a booking API.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server exited with error: ", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting Reservation Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	loc, err := time.LoadLocation(cfg.Reservation.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Reservation.Timezone, err)
	}

	// 3. Reservation domain
	repo, closeRepo, err := newReservationRepository(ctx, cfg.Reservation, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	var calendar usecase.Calendar
	if cfg.GoogleCalendar.Enabled() {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run ./cmd/gcal-auth` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar mirror initialized")
		}
	}

	reservationUC := usecase.New(logger, repo, calendar, usecase.Config{
		ReferenceYear:       cfg.Reservation.ReferenceYear,
		Location:            loc,
		Purpose:             cfg.Reservation.Purpose,
		CalendarID:          cfg.GoogleCalendar.CalendarID,
		AppointmentDuration: time.Duration(cfg.GoogleCalendar.AppointmentMinutes) * time.Minute,
	})

	var reservationHandler reservationHTTP.Handler
	if cfg.Reservation.Backend == config.ReservationBackendSQLite {
		reservationHandler = reservationHTTP.New(logger, reservationUC)
	}

	// 4. Agent
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("initialize LLM providers: %w", err)
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		return err
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	sessions, closeSessions, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSessions()

	registry := agent.NewToolRegistry()
	registry.Register(tools.NewCreateReservationTool(logger, reservationUC))
	registry.Register(tools.NewDeleteReservationTool(logger, reservationUC))

	orc := orchestrator.New(llm, registry, sessions, logger, orchestrator.Options{
		Temperature: cfg.LLM.Temperature,
		Location:    loc,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			AllowedOrigins:  cfg.CORS.AllowedOrigins,
			RateLimitPerMin: cfg.RateLimit.PerMin,
		},
		AgentHandler:       agentHTTP.New(logger, orc),
		ReservationHandler: reservationHandler,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 6. Run
	return httpServer.Run(ctx)
}

func newReservationRepository(ctx context.Context, cfg config.ReservationConfig, logger log.Logger) (repository.Repository, func(), error) {
	switch cfg.Backend {
	case config.ReservationBackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open reservation store: %w", err)
		}
		logger.Infof(ctx, "Reservation store: sqlite at %s", cfg.SQLitePath)
		return sqlite.New(db, logger), closer(ctx, logger, "sqlite", db), nil
	default:
		logger.Infof(ctx, "Reservation store: booking service at %s", cfg.BookingURL)
		client := remote.NewClient(cfg.BookingURL, cfg.Timeout)
		return remote.New(client, logger), func() {}, nil
	}
}

func newSessionStore(ctx context.Context, cfg *config.Config, logger log.Logger) (session.Store, func(), error) {
	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		logger.Info(ctx, "Chat history: in-memory")
		return memory.New(memory.Options{TTL: cfg.Session.TTL, MaxHistory: cfg.Session.MaxHistory}), func() {}, nil
	default:
		client, err := pkgRedis.Connect(ctx, pkgRedis.Options{
			URL:      cfg.Redis.URL,
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect chat history store: %w", err)
		}
		logger.Info(ctx, "Chat history: redis")
		store := sessionRedis.New(logger, client, sessionRedis.Options{
			KeyPrefix:  cfg.Session.KeyPrefix,
			TTL:        cfg.Session.TTL,
			MaxHistory: cfg.Session.MaxHistory,
		})
		return store, closer(ctx, logger, "redis", client), nil
	}
}

type closable interface{ Close() error }

func closer(ctx context.Context, logger log.Logger, name string, c closable) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warnf(ctx, "close %s: %v", name, err)
		}
	}
}
