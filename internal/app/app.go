package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/skyfold/flightdeck/internal/config"
	"github.com/skyfold/flightdeck/internal/httpserver"
	"github.com/skyfold/flightdeck/internal/httpserver/deps"
	"github.com/skyfold/flightdeck/internal/index"
	"github.com/skyfold/flightdeck/internal/logger"
	"github.com/skyfold/flightdeck/internal/redis"
	"github.com/skyfold/flightdeck/internal/scheduler"
	"github.com/skyfold/flightdeck/internal/sources/serpflights"
	"github.com/skyfold/flightdeck/internal/version"
)

type App struct {
	cfg              *config.Config
	logger           logger.Logger
	server           *httpserver.Server
	redisClient      *goredis.Client
	advisoryReloader *scheduler.AdvisoryReloader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis backs the result cache only. When no address is configured
	// the service runs without caching; when an address is configured,
	// fail fast if it cannot be reached.
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, loggerClient)
		if err != nil {
			loggerClient.Error("failed to connect to redis", logger.Error(err))
			os.Exit(1)
		}
		redisClient = client
	} else {
		loggerClient.Info("redis address not configured, result cache disabled")
	}

	provider := serpflights.NewClient(cfg.ProviderBaseURL, cfg.ProviderAPIKey, cfg.ProviderTimeout)

	// Route advisories are optional. When a file is configured, the
	// reloader keeps the in-memory table fresh.
	var advisoryIndex *index.AdvisoryIndex
	var advisoryReloader *scheduler.AdvisoryReloader
	var advisoryReloadTrigger chan struct{}
	if cfg.AdvisoryFile != "" {
		loggerClient.Info("advisory file configured, initializing reloader",
			logger.String("file", cfg.AdvisoryFile))
		advisoryIndex = index.NewAdvisoryIndex()
		advisoryReloadTrigger = make(chan struct{}, 1)
		advisoryReloader = scheduler.NewAdvisoryReloader(
			cfg.AdvisoryFile,
			advisoryIndex,
			loggerClient,
			cfg.AdvisoryReload,
			advisoryReloadTrigger,
		)
	} else {
		loggerClient.Info("advisory file not configured, route warnings disabled")
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:                loggerClient,
		StartTime:             time.Now(),
		Version:               version.Version,
		Commit:                version.Commit,
		BuildDate:             version.BuildDate,
		GoVersion:             version.GoVersion,
		TimeNow:               time.Now,
		Provider:              provider,
		Advisories:            advisoryIndex,
		LongLayoverMinutes:    cfg.LongLayoverMinutes,
		SearchCacheTTL:        cfg.SearchCacheTTL,
		RedisClient:           redisClient,
		AdvisoryReloadTrigger: advisoryReloadTrigger,
		TrustProxy:            cfg.TrustProxy,
		RateLimitBurst:        cfg.RateLimitBurst,
		RateLimitPerMinute:    cfg.RateLimitPerMinute,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:              cfg,
		logger:           loggerClient,
		server:           server,
		redisClient:      redisClient,
		advisoryReloader: advisoryReloader,
	}
}

func (a *App) Run() error {
	a.logger.Info("starting flightdeck",
		logger.String("version", version.Version),
		logger.String("commit", version.Commit),
		logger.String("built", version.BuildDate),
		logger.String("go", version.GoVersion),
		logger.String("addr", a.cfg.ListenPort))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start advisory reloader (loads the file and starts periodic refresh)
	if a.advisoryReloader != nil {
		if err := a.advisoryReloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start advisory reloader: %w", err)
		}
		a.logger.Info("advisory reloader started",
			logger.Duration("interval", a.cfg.AdvisoryReload))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.advisoryReloader != nil {
		a.advisoryReloader.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", logger.Error(err))
		} else {
			a.logger.Info("redis closed cleanly")
		}
	}

	a.logger.Info("flightdeck stopped cleanly")
	return nil
}
