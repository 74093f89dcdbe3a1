package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	chatHttp "process-mining-service/internal/assistant/adapters/http/fiber"
	"process-mining-service/internal/assistant/adapters/langchain"
	assistantPorts "process-mining-service/internal/assistant/core/ports"
	assistantUsecase "process-mining-service/internal/assistant/core/usecase"
	"process-mining-service/internal/config"
	"process-mining-service/internal/events/adapters/csvsource"
	eventsHttp "process-mining-service/internal/events/adapters/http/fiber"
	"process-mining-service/internal/events/adapters/sqlstore"
	eventsPorts "process-mining-service/internal/events/core/ports"
	eventsUsecase "process-mining-service/internal/events/core/usecase"
	"process-mining-service/internal/logging"
	metricsHttp "process-mining-service/internal/metrics/adapters/http/fiber"
	metricsUsecase "process-mining-service/internal/metrics/core/usecase"
	"process-mining-service/internal/server"
	"process-mining-service/internal/snapshot"
	"process-mining-service/internal/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "process-mining-service/docs"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := logging.Init(cfg.Verbose, cfg.LogsFolder); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB connection
	db, err := sqlstore.Open(ctx, cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to event store")
	}
	defer db.Close()

	// Repositories
	eventRepository := sqlstore.NewEventRepository(sqlstore.NewSQLDB(db), cfg.DB.Driver)
	if err := eventRepository.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	var (
		reader eventsPorts.EventReaderPort = eventRepository
		writer                             = telemetry.InstrumentWriter(eventRepository)
	)

	// In-memory snapshot in front of the repository
	if cfg.Snapshot.RefreshInterval > 0 {
		store := snapshot.NewStore(eventRepository)
		store.Subscribe(telemetry.SnapshotListener())
		store.Subscribe(snapshot.ListenerFunc(logSnapshot))

		if _, err := store.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("initial snapshot incomplete")
		}
		go store.Run(ctx, cfg.Snapshot.RefreshInterval)

		reader = store
		writer = store.RefreshAfterWrite(writer)
	}

	// Usecases
	ingestUC := eventsUsecase.NewIngestEventsUseCase(writer)
	listEventsUC := eventsUsecase.NewListEventsUseCase(reader)

	statsUC := metricsUsecase.NewGetStatsUseCase(reader)
	casesUC := metricsUsecase.NewGetCasesUseCase(reader)
	heatmapUC := metricsUsecase.NewGetHeatmapUseCase(reader)
	valuesUC := metricsUsecase.NewGetDimensionValuesUseCase(reader)
	dashboardUC := metricsUsecase.NewGetDashboardUseCase(reader)

	var completer assistantPorts.CompleterPort
	if cfg.LLM.Enabled() {
		c, err := langchain.New(langchain.Config{
			APIKey:    cfg.LLM.APIKey,
			Model:     cfg.LLM.Model,
			BaseURL:   cfg.LLM.BaseURL,
			RateLimit: cfg.LLM.RateLimit,
			MaxTokens: cfg.LLM.MaxTokens,
		})
		if err != nil {
			log.Warn().Err(err).Msg("llm unavailable, assistant answers from statistics only")
		} else {
			completer = c
			log.Info().Str("model", c.Model()).Msg("assistant llm enabled")
		}
	}
	askUC := assistantUsecase.NewAskUseCase(reader, completer)

	// HTTP (Fiber) app + handlers
	app := server.NewApp(server.Options{
		AllowOrigins: cfg.HTTP.FrontendURL,
		Middleware:   []fiber.Handler{telemetry.Middleware()},
	})

	health := func(c *fiber.Ctx) error {
		return server.OK(c, fiber.Map{"status": "ok", "time": time.Now().UTC()})
	}
	app.Get("/health", health)
	app.Get("/metrics", telemetry.Handler())
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	api := app.Group("/api")
	api.Get("/health", health)

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(ingestUC, listEventsUC, csvsource.NewParser(), cfg.IngestBatchSize)
	api.Post("/:dataset/events/import", eventsHandler.ImportEvents)
	api.Get("/:dataset/events", eventsHandler.ListEvents)

	// assistant endpoints
	chatHttp.NewChatHandler(askUC).Register(api)

	// metrics endpoints
	metricsHttp.NewMetricsHandler(statsUC, casesUC, heatmapUC, valuesUC, dashboardUC).Register(api)

	app.Use(server.NotFound)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTP.Addr); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().Str("addr", cfg.HTTP.Addr).Str("driver", cfg.DB.Driver).Msg("server started")

	<-ctx.Done()

	log.Info().Msg("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}

func logSnapshot(s *snapshot.Snapshot) {
	for ds, d := range s.Datasets {
		ev := log.Debug()
		if d.Err != nil {
			ev = log.Warn().Err(d.Err)
		}
		ev.Str("dataset", string(ds)).Int("events", len(d.Events)).Time("loaded_at", d.LoadedAt).Msg("snapshot refreshed")
	}
}
