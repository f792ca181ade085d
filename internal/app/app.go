package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"traffic-dashboard/internal/aggregators"
	"traffic-dashboard/internal/captures"
	"traffic-dashboard/internal/captures/livecapture"
	"traffic-dashboard/internal/events"
	internalhttp "traffic-dashboard/internal/http"
	"traffic-dashboard/internal/ingestors"
	"traffic-dashboard/internal/queries"
	"traffic-dashboard/internal/shared/configs"
	"traffic-dashboard/internal/shared/filestorages"
	"traffic-dashboard/internal/shared/loggers"
	"traffic-dashboard/internal/stores"
	"traffic-dashboard/internal/streams"
)

const (
	captureModeLive = "live"
	captureModeFile = "file"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	packetQueue      *streams.PartitionedQueue[events.PacketCapturedEvent]
	packetConsumer   streams.PacketConsumer
	supervisor       captures.Supervisor
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, "traffic-dashboard").
		Logger()

	aggregator, err := aggregators.NewTrafficAggregator(aggregators.Config{
		ServerIP:         config.Monitor.ServerIP,
		WindowSeconds:    config.Monitor.WindowSeconds,
		RetentionSeconds: config.Monitor.RetentionSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize aggregator: %w", err)
	}

	// capture -> partitioned stream -> aggregator
	packetQueue := streams.NewPartitionedQueue[events.PacketCapturedEvent](config.Stream.Partitions, config.Stream.Buffer)
	packetConsumer := streams.NewPacketConsumer(packetQueue, aggregator, loggers.ForComponent(appLogger, "consumer"))
	packetProducer := streams.NewPacketProducer(packetQueue)

	captureLogger := loggers.ForComponent(appLogger, "capture")
	opener, err := newSourceOpener(config.Capture, captureLogger)
	if err != nil {
		return nil, err
	}
	supervisor := captures.NewSupervisor(
		opener,
		captures.NewPacketDecoder(),
		packetProducer,
		captures.SupervisorConfig{
			BackoffInitial: time.Duration(config.Capture.BackoffInitial) * time.Second,
			BackoffMax:     time.Duration(config.Capture.BackoffMax) * time.Second,
			StopAtEnd:      config.Capture.Mode == captureModeFile,
		},
		captureLogger,
	)

	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	ingestionService := ingestors.NewJSONDataIngestionService(stores.NewJSONDataStore(fileStorage))
	queryService := queries.NewTrafficQueryService(aggregator)

	router := internalhttp.NewRouter(queryService, ingestionService, loggers.ForComponent(appLogger, "http"))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:         config,
		appLogger:      appLogger,
		server:         server,
		packetQueue:    packetQueue,
		packetConsumer: packetConsumer,
		supervisor:     supervisor,
	}, nil
}

func newSourceOpener(cfg configs.CaptureConfig, logger loggers.Logger) (captures.SourceOpener, error) {
	switch cfg.Mode {
	case captureModeLive:
		return livecapture.NewLiveOpener(livecapture.Config{
			Iface:       cfg.Iface,
			SnapshotLen: cfg.SnapshotLen,
			Promiscuous: cfg.Promiscuous,
			BPFFilter:   cfg.BPFFilter,
		}), nil
	case captureModeFile:
		if cfg.BPFFilter != "" {
			logger.Warn().
				Str(loggers.FieldSource, cfg.PcapFile).
				Msg("bpf_filter is ignored when replaying a capture file")
		}
		return captures.NewFileOpener(cfg.PcapFile), nil
	default:
		return nil, fmt.Errorf("unsupported capture mode %q", cfg.Mode)
	}
}

// Start runs capture and aggregation in the background, then serves HTTP until shutdown.
func (app *App) Start() error {
	app.appLogger.Info().
		Str(loggers.FieldServerIP, app.config.Monitor.ServerIP).
		Str("capture_mode", app.config.Capture.Mode).
		Int("window_seconds", app.config.Monitor.WindowSeconds).
		Int("retention_seconds", app.config.Monitor.RetentionSeconds).
		Msgf("Starting traffic-dashboard on port %d", app.config.Server.Port)

	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.packetConsumer.Start(app.backgroundCtx)
	app.supervisor.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown stops the server first, then capture, then drains the stream.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	app.supervisor.Stop()
	app.appLogger.Info().Msg("Capture stopped")

	app.packetQueue.Close()
	app.packetConsumer.Stop()
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.appLogger.Info().Msg("Packet consumers stopped")

	return nil
}
