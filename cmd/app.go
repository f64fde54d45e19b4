package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wallet-monitor/config"
	"wallet-monitor/pkg/firebase"
	cloudmessaging "wallet-monitor/pkg/firebase/cloud-messaging"
	"wallet-monitor/pkg/ledger"
	"wallet-monitor/pkg/logger"
	"wallet-monitor/pkg/mongodb"
	"wallet-monitor/pkg/telemetry"
	"wallet-monitor/services/balance"
	"wallet-monitor/services/health"
	"wallet-monitor/services/migration"
	"wallet-monitor/services/notification"
	"wallet-monitor/services/statusbar"
	"wallet-monitor/services/supervisor"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func run(ctx context.Context, flags *rootFlags) error {
	cfg, err := config.GetConfig(flags.envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Init logger
	newLogger, err := logger.NewLogger(cfg.Environment, flags.logFile)
	if err != nil {
		return fmt.Errorf("can't create logger: %w", err)
	}

	zapLogger, err := newLogger.SetupZapLogger()
	if err != nil {
		return fmt.Errorf("can't setup zap logger: %w", err)
	}
	defer func(zapLogger *zap.SugaredLogger) {
		err := zapLogger.Sync()
		if err != nil && !errors.Is(err, syscall.ENOTTY) && !errors.Is(err, syscall.EINVAL) {
			fmt.Fprintf(os.Stderr, "can't sync zap logger: %v\n", err)
		}
	}(zapLogger)

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Ledger
	connector, err := ledger.NewConnector(ledger.Kind(cfg.Kind))
	if err != nil {
		return err
	}

	// Alert history
	var alertRepository notification.Repository
	if cfg.HistoryEnabled() {
		db, err := mongodb.NewConnection(ctx, cfg.MongoDbUrl, mongodb.DefaultTimeout)
		if err != nil {
			return fmt.Errorf("failed to connect to mongodb: %w", err)
		}
		defer func(db *mongo.Client) {
			if err := mongodb.Close(db); err != nil {
				zapLogger.Errorf("failed to disconnect from mongodb: %v", err)
			}
		}(db)
		zapLogger.Info("DB connected successfully")

		if err := migration.RunMigrations(ctx, db, cfg.MongoDbName, zapLogger); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		alertRepository, err = notification.NewRepository(db, cfg.MongoDbName, zapLogger)
		if err != nil {
			return err
		}
	}

	// Firebase
	var cloudMessagingService cloudmessaging.Service
	if cfg.FirebaseEnabled() {
		cloudMessagingService, err = newCloudMessagingService(ctx, cfg)
		if err != nil {
			return err
		}
	}

	channels, err := newHTTPChannels(cfg)
	if err != nil {
		return err
	}
	channels = append(channels,
		notification.NewFirebaseChannel(cloudMessagingService, cfg.Firebase.PushToken),
		notification.NewHistoryChannel(alertRepository),
	)

	notificationService, err := notification.NewService(channels, zapLogger)
	if err != nil {
		return err
	}
	zapLogger.Infof("notification channels enabled: %v", notificationService.Channels())

	// Balances
	store := balance.NewStore(cfg.Addresses)

	sampler, err := balance.NewSampler(connector, cfg.NodeURL, store, notificationService, cfg.TokenSymbol, cfg.QueryTimeout(), zapLogger)
	if err != nil {
		return err
	}

	// Status bar
	var renderer *statusbar.Renderer
	if cfg.StatusBar.Enabled {
		renderer, err = newRenderer(cfg, store, sampler, zapLogger)
		if err != nil {
			return err
		}
	}

	// API
	if cfg.Port != "" {
		app, err := newAPI(store, sampler, renderer, alertRepository)
		if err != nil {
			return err
		}

		go func() {
			if err := app.Listen(":" + cfg.Port); err != nil {
				zapLogger.Errorf("api server failed: %v", err)
			}
		}()
		zapLogger.Infof("Server started on port %v", cfg.Port)

		defer func() {
			if err := app.Shutdown(); err != nil {
				zapLogger.Errorf("failed to shut down api server: %v", err)
			}
		}()
	}

	var svRenderer supervisor.Renderer
	if renderer != nil {
		svRenderer = renderer
	}

	sv, err := supervisor.NewSupervisor(sampler, svRenderer, cfg.PollInterval(), cfg.RefreshInterval(), zapLogger)
	if err != nil {
		return err
	}

	zapLogger.Infof("wallet monitor started for %d addresses on %s", len(cfg.Addresses), cfg.NodeURL)
	if err := sv.Run(ctx); err != nil {
		return err
	}

	zapLogger.Info("wallet monitor stopped")
	return nil
}

func newHTTPChannels(cfg *config.Config) ([]notification.Channel, error) {
	client := notification.NewHTTPClient(cfg.HTTPTimeout())

	discord, err := notification.NewDiscordChannel(client, cfg.Discord.Webhook)
	if err != nil {
		return nil, err
	}
	pushbullet, err := notification.NewPushbulletChannel(client, notification.PushbulletURL, cfg.Pushbullet.Token)
	if err != nil {
		return nil, err
	}
	pushover, err := notification.NewPushoverChannel(client, notification.PushoverURL, cfg.UserKey, cfg.APIToken)
	if err != nil {
		return nil, err
	}
	telegram, err := notification.NewTelegramChannel(client, notification.TelegramURL, cfg.BotToken, cfg.ChatID)
	if err != nil {
		return nil, err
	}

	return []notification.Channel{discord, pushbullet, pushover, telegram}, nil
}

func newCloudMessagingService(ctx context.Context, cfg *config.Config) (cloudmessaging.Service, error) {
	cloudMessagingClient, err := firebase.NewMessagingClient(ctx, cfg.Firebase.CredPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase cloud messaging client: %w", err)
	}

	return cloudmessaging.NewCloudMessagingService(cloudMessagingClient, cfg.AndroidChannelName)
}

func newRenderer(cfg *config.Config, store *balance.Store, sampler *balance.Sampler, zapLogger *zap.SugaredLogger) (*statusbar.Renderer, error) {
	var sink statusbar.Sink = statusbar.NewWriterSink(os.Stdout)
	if cfg.StatusFile != "" {
		fileSink, err := statusbar.NewFileSink(cfg.StatusFile)
		if err != nil {
			return nil, err
		}
		sink = fileSink
	}

	var gpu telemetry.GPUStatsProvider
	if cfg.GPUEnabled {
		gpu = telemetry.NewGPUStatsProvider()
	}

	return statusbar.NewRenderer(
		store,
		sampler,
		telemetry.NewSystemStatsProvider(),
		gpu,
		sink,
		statusbar.Options{
			GPUEnabled:        cfg.GPUEnabled,
			GPUWidthThreshold: cfg.GPUWidthThreshold,
			TerminalWidth:     cfg.TerminalWidth,
		},
		zapLogger,
	)
}

func newAPI(store *balance.Store, sampler *balance.Sampler, renderer *statusbar.Renderer, alertRepository notification.Repository) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		ServerHeader: "wallet-monitor",
		// stdout carries the status line
		DisableStartupMessage: true,
	})

	// Init cors
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, OPTIONS",
	}))

	healthHandler := health.NewHandler(sampler)

	var lines statusbar.LineSource = staticLine("")
	if renderer != nil {
		lines = renderer
	}
	statusHandler, err := statusbar.NewHandler(store, lines)
	if err != nil {
		return nil, err
	}

	var alertHandler *notification.Handler
	if alertRepository != nil {
		alertHandler, err = notification.NewHandler(alertRepository)
		if err != nil {
			return nil, err
		}
	}

	// Set-up Route
	app.Route("/api/v1", func(router fiber.Router) {
		healthHandler.SetupRoutes(router)
		statusHandler.SetupRoutes(router)
		if alertHandler != nil {
			alertHandler.SetupRoutes(router)
		}
	})

	// Handle 404 page
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(map[string]string{"error": "page not found"})
	})

	return app, nil
}

// staticLine stands in for the renderer when the status bar is disabled.
type staticLine string

func (l staticLine) Line() string { return string(l) }
