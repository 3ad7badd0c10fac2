package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"encly/internal/cache"
	"encly/internal/config"
	"encly/internal/handler"
	"encly/internal/logger"
	"encly/internal/metrics"
	custommiddleware "encly/internal/middleware"
	"encly/internal/repository"
	"encly/internal/repository/sqlite"
	"encly/internal/service"
	"encly/internal/shortener"
	"encly/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).
			Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// storage is the backend-specific part of the wiring.
type storage struct {
	links    service.LinkStore
	clicks   service.ClickLedger
	copier   metrics.CopyFromer
	pool     metrics.PoolStatsFunc
	closeAll func()
}

func openStorage(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := repository.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Migrate {
			if err := repository.Migrate(pool); err != nil {
				pool.Close()
				return nil, err
			}
			logger.Info("database migrations applied")
		}
		return &storage{
			links:    repository.NewLinkRepository(pool),
			clicks:   repository.NewClickRepository(pool),
			copier:   pool,
			pool:     metrics.PgxPoolStats(pool),
			closeAll: pool.Close,
		}, nil

	default:
		db, err := sqlite.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Migrate {
			if err := sqlite.Migrate(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
			logger.Info("database schema applied", slog.String("driver", cfg.Driver))
		}
		return &storage{
			links:    sqlite.NewLinkRepository(db),
			clicks:   sqlite.NewClickRepository(db),
			pool:     metrics.SQLPoolStats(db),
			closeAll: func() { _ = db.Close() },
		}, nil
	}
}

type closableCache interface {
	service.LinkCache
	metrics.CacheStats
	Close()
}

func openCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (closableCache, error) {
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		c, err := cache.New(cfg.Cache.MaxSizePow2, cfg.Cache.TTL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.CacheRedis:
		client, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		return cache.NewRedis(client, cfg.Cache.TTL, logger), nil
	default:
		return nil, nil
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, logCloser, err := logger.New(&cfg.Log, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logCloser.Close() }()
	slog.SetDefault(log)

	store, err := openStorage(ctx, &cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.closeAll()

	short, err := shortener.New(cfg.Link.CodeLength)
	if err != nil {
		return fmt.Errorf("failed to create shortener: %w", err)
	}

	linkCache, err := openCache(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}

	recorder := metrics.NewRecorder(store.copier, &cfg.Metrics, log)
	recorder.Start(ctx)
	defer recorder.Close()

	opts := []service.Option{service.WithMaxAttempts(cfg.Link.MaxCreateAttempts)}
	var cacheStats metrics.CacheStats
	if linkCache != nil {
		defer linkCache.Close()
		opts = append(opts, service.WithCache(linkCache))
		cacheStats = linkCache
		log.Info("link cache enabled", slog.String("backend", cfg.Cache.Backend))
	}

	if recorder.Enabled() {
		sampler := metrics.NewInfraSampler(recorder, store.pool, cacheStats, log)
		if err := sampler.Start(cfg.Metrics.InfraSchedule); err != nil {
			return fmt.Errorf("failed to schedule infra metrics: %w", err)
		}
		defer sampler.Stop()
	}

	links := service.NewLinkService(store.links, store.clicks, short, recorder, log, cfg.App.BaseURL, opts...)
	h := handler.New(links, validation.NewURLValidator(&cfg.Validation, cfg.App.BaseURL), log, recorder, &cfg.Link)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.NewStructValidator()
	e.Use(middleware.Recover())
	e.Use(custommiddleware.Metrics(recorder))
	e.Use(custommiddleware.RequestLogger(log))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.App.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, log))

	h.Register(e)

	return serve(ctx, e, &cfg.Server, log)
}

func serve(ctx context.Context, h http.Handler, cfg *config.ServerConfig, log *slog.Logger) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	log.Info("starting HTTP server",
		slog.String("addr", addr),
		slog.Int("max_connections", cfg.MaxConnections))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.MaxConnections)
	}

	server := &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
		ErrorLog:       slog.NewLogLogger(log.Handler(), slog.LevelWarn),
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
