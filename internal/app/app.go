package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/sojibulislamrana/social-events-vercel/internal/config"
	"github.com/sojibulislamrana/social-events-vercel/internal/handler"
	"github.com/sojibulislamrana/social-events-vercel/internal/middleware"
	"github.com/sojibulislamrana/social-events-vercel/internal/repository"
	"github.com/sojibulislamrana/social-events-vercel/internal/router"
	"github.com/sojibulislamrana/social-events-vercel/internal/service"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	store      *repository.Store
	httpServer *http.Server
}

// New constructs the whole service: logger, store connection (with a
// readiness ping), repositories, services, and the HTTP stack. Nothing is
// initialized lazily; if the store is unreachable New fails and no request
// is ever served.
func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventDirectory",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStore(); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStore() error {
	store, err := repository.Connect(
		context.Background(),
		a.cfg.Mongo.URI,
		a.cfg.Mongo.Database,
		a.cfg.Mongo.ConnectTimeout,
	)
	if err != nil {
		return fmt.Errorf("connecting to store: %w", err)
	}

	if err := store.EnsureIndexes(context.Background()); err != nil {
		a.log.Warn("ensure indexes failed", logger.String("error", err.Error()))
	}

	a.store = store
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "store connected",
		logger.String("database", a.cfg.Mongo.Database),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.store)
	joinRepo := repository.NewJoinRepo(a.store)
	userRepo := repository.NewUserRepo(a.store)

	eventService := service.NewEventService(eventRepo, joinRepo, a.log)
	joinService := service.NewJoinService(joinRepo, eventRepo, a.log)
	userService := service.NewUserService(userRepo, a.log)
	statsService := service.NewStatsService(eventRepo, joinRepo)

	h := handler.NewHandler(eventService, joinService, userService, statsService, a.store)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// Handler exposes the routed HTTP stack for hosts that dispatch requests
// themselves instead of letting the process bind a socket.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.store.Close(shutdownCtx); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "store connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
