package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kinogate/internal/config"
	"kinogate/internal/conversation"
	"kinogate/internal/handler"
	"kinogate/internal/httpserver"
	"kinogate/internal/membership"
	"kinogate/internal/metrics"
	"kinogate/internal/middleware"
	"kinogate/internal/repository"
	"kinogate/internal/repository/memory"
	"kinogate/internal/repository/postgres"
	"kinogate/internal/repository/redis"
	"kinogate/internal/router"
	"kinogate/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
	telemw "gopkg.in/telebot.v3/middleware"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Kinogate Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("storage", cfg.StorageDriver),
		zap.Int64("operator_id", cfg.OperatorID),
	)

	// Open storage backend
	store, closer, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closer.Close()

	logger.Info("Storage ready")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil && c.Sender() != nil {
				fields = append(fields, zap.Int64("user_id", c.Sender().ID))
			}
			logger.Error("Bot error", fields...)
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	// Initialize services
	userService := service.NewUserService(store, cfg.OperatorID)
	channelService := service.NewChannelService(store, m)
	mediaService := service.NewMediaService(store, m)
	statsService := service.NewStatsService(store, logger)
	gateService := service.NewGateService(store, membership.NewTelegramOracle(bot), m, logger)

	engine := conversation.NewEngine(channelService, mediaService, cfg.StateTTL, logger)

	r := router.New(router.Deps{
		Users:    userService,
		Gate:     gateService,
		Media:    mediaService,
		Channels: channelService,
		Stats:    statsService,
		Engine:   engine,
		Locker:   conversation.NewLocker(),
		Metrics:  m,
		Logger:   logger,
	})

	// Middleware and handlers
	bot.Use(telemw.Recover())
	bot.Use(middleware.TrackUsers(userService, cfg.RequestTimeout, logger))

	h := handler.NewHandler(bot, r, cfg.RequestTimeout, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start state cleanup job in background
	go runCleanupJob(ctx, engine, cfg.StateTTL, logger)

	// Start liveness server in background
	httpServer := httpserver.New(cfg.HTTPAddr(), registry, logger)
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openStore connects the configured storage backend
func openStore(cfg *config.Config, logger *zap.Logger) (repository.Store, io.Closer, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		// Connect to database with retries
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("Database connection established")

		// Run migrations
		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, nil, err
		}

		logger.Info("Database migrations completed")
		return postgres.NewStore(db), db, nil

	case config.StorageRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		store, err := redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("Redis connection established")
		return store, store, nil

	case config.StorageMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		return memory.NewStore(), closerFunc(func() error { return nil }), nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case err == migrate.ErrNoChange:
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runCleanupJob periodically drops expired conversation states
func runCleanupJob(ctx context.Context, engine *conversation.Engine, ttl time.Duration, logger *zap.Logger) {
	if ttl <= 0 {
		return
	}

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			if removed := engine.Sweep(); removed > 0 {
				logger.Info("Expired conversation states dropped", zap.Int("count", removed))
			}
		}
	}
}
