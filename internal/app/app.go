package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"qrmenu-analytics/internal/analytics"
	"qrmenu-analytics/internal/events"
	internalhttp "qrmenu-analytics/internal/http"
	"qrmenu-analytics/internal/ingestors"
	"qrmenu-analytics/internal/shared/configs"
	"qrmenu-analytics/internal/shared/filestorages"
	"qrmenu-analytics/internal/shared/loggers"
	"qrmenu-analytics/internal/stores"
	"qrmenu-analytics/internal/streams"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

const startupTimeout = 30 * time.Second

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	clickHouseConn driver.Conn
	catalogDB      *sql.DB

	trackedEventConsumer streams.TrackedEventConsumer
	backgroundCtx        context.Context
	backgroundCancel     context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "qrmenu-analytics").
		Logger()

	reportingLocation, err := loadReportingLocation(config.Analytics.Timezone)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize event store
	clickHouseConn, err := stores.NewClickHouseConn(ctx, config.ClickHouse)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event store: %w", err)
	}
	eventStore := stores.NewEventStore(clickHouseConn)
	if err := eventStore.Migrate(ctx); err != nil {
		_ = clickHouseConn.Close()
		return nil, fmt.Errorf("failed to migrate event store: %w", err)
	}

	// Initialize catalog
	catalogDB, err := stores.NewPostgresDB(ctx, config.Postgres)
	if err != nil {
		_ = clickHouseConn.Close()
		return nil, fmt.Errorf("failed to initialize catalog: %w", err)
	}
	catalogStore := stores.NewCatalogStore(catalogDB)

	// Initialize analytics service
	analyticsService := analytics.NewAnalyticsService(eventStore, catalogStore, analytics.Options{
		Location:           reportingLocation,
		LeaderboardWorkers: config.Analytics.LeaderboardWorkers,
		TopProductsLimit:   config.Analytics.TopProductsLimit,
	})

	// Initialize stream queue
	trackedEventQueue := streams.NewPartitionedQueue[events.TrackedEventBatch](config.Stream.Partitions, config.Stream.Buffer)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	trackedEventConsumer := streams.NewTrackedEventConsumer(trackedEventQueue, eventStore, consumerLogger)

	// Initialize ingestionService
	batchStore := stores.NewTrackingBatchStore(fileStorage)
	deviceDetector := ingestors.NewDeviceDetector()
	trackedEventProducer := streams.NewTrackedEventProducer(trackedEventQueue)
	ingestionService := ingestors.NewIngestionService(deviceDetector, batchStore, trackedEventProducer)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, analyticsService, reportingLocation, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	backgroundCtx, backgroundCancel := context.WithCancel(context.Background())

	return &App{
		backgroundCtx:        backgroundCtx,
		backgroundCancel:     backgroundCancel,
		config:               config,
		appLogger:            appLogger,
		server:               server,
		clickHouseConn:       clickHouseConn,
		catalogDB:            catalogDB,
		trackedEventConsumer: trackedEventConsumer,
	}, nil
}

func loadReportingLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load analytics timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting qrmenu-analytics service on port %d (log_level=%s, file_storage_root_dir=%s, clickhouse=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.ClickHouse.Addr)

	// start background consumers
	app.trackedEventConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop consumers, they flush what was already accepted into the event store
	app.trackedEventConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	// 3) Release the background context
	app.backgroundCancel()

	// 4) Close stores last
	return errors.Join(app.clickHouseConn.Close(), app.catalogDB.Close())
}
