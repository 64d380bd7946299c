// Wellness Monitor API
//
// Sleep, sedentary, stress and burnout analysis over wearable sensor readings.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/api"
	"github.com/blaisecz/wellness-monitor/internal/api/handler"
	"github.com/blaisecz/wellness-monitor/internal/config"
	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/blaisecz/wellness-monitor/internal/langfuse"
	"github.com/blaisecz/wellness-monitor/internal/llm"
	"github.com/blaisecz/wellness-monitor/internal/repository"
	"github.com/blaisecz/wellness-monitor/internal/seed"
	"github.com/blaisecz/wellness-monitor/internal/sensors"
	"github.com/blaisecz/wellness-monitor/internal/service"
	"github.com/blaisecz/wellness-monitor/internal/telemetry"
	"github.com/blaisecz/wellness-monitor/internal/wellness"
	"github.com/blaisecz/wellness-monitor/pkg/logger"
	"github.com/blaisecz/wellness-monitor/pkg/metrics"
	"go.uber.org/zap"
)

const serviceName = "wellness-monitor-api"

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flushSentry, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		ServerName:  serviceName,
	}, log)
	if err != nil {
		log.Fatal("failed to initialize sentry", zap.Error(err))
	}
	defer flushSentry()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Device{}, &domain.SensorReading{}); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	log.Info("database migration completed")

	if cfg.Seed {
		log.Info("seeding database with demo devices (SEED=true)")
		if err := seed.Run(ctx, db, log); err != nil {
			log.Fatal("failed to seed database", zap.Error(err))
		}
	}

	// Engine calibration
	thresholds, err := wellness.LoadThresholds(cfg.ThresholdsPath)
	if err != nil {
		log.Fatal("failed to load wellness thresholds", zap.Error(err))
	}
	engine := wellness.NewEngine(wellness.WithThresholds(thresholds))

	m := metrics.NewManager()

	// Initialize repositories
	deviceRepo := repository.NewDeviceRepository(db)
	readingRepo := repository.NewSensorReadingRepository(db)

	// Langfuse tracing and prompt management (both optional)
	langfuseCfg := langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}
	langfuseClient := langfuse.NewClient(langfuseCfg, log)

	systemPrompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptConfig{
		Config:    langfuseCfg,
		Name:      cfg.LangfusePromptName,
		Label:     cfg.LangfusePromptLabel,
		CachePath: cfg.LangfusePromptCache,
	}, log)
	if err != nil {
		log.Info("no managed coaching prompt, using built-in default", zap.Error(err))
		systemPrompt = ""
	}

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(llm.ClientConfig{
		APIKey:       cfg.OpenAIAPIKey,
		Model:        cfg.OpenAICoachingModel,
		SystemPrompt: systemPrompt,
	})
	if openaiClient == nil {
		log.Warn("OpenAI API key not configured, coaching endpoint will be unavailable")
	}

	// Initialize services
	deviceService := service.NewDeviceService(deviceRepo)
	readingService := service.NewReadingService(readingRepo, deviceRepo, m, log)
	wellnessService := service.NewWellnessService(
		engine,
		readingRepo,
		deviceRepo,
		sensors.NewFileSource(cfg.SensorDataPath),
		sensors.NewFileSource(cfg.DemoDataPath),
		m,
		log,
	)
	exportService := service.NewExportService(wellnessService, engine)
	coachingService := service.NewCoachingService(wellnessService, openaiClient, langfuseClient, deviceRepo, m, log, openaiClient.Model())

	// Initialize handlers
	deviceHandler := handler.NewDeviceHandler(deviceService)
	readingHandler := handler.NewReadingHandler(readingService)
	wellnessHandler := handler.NewWellnessHandler(wellnessService, exportService, cfg.DefaultWindowHours)
	coachingHandler := handler.NewCoachingHandler(coachingService, cfg.DefaultWindowHours)

	// Setup router
	router := api.NewRouter(deviceHandler, readingHandler, wellnessHandler, coachingHandler, m, log)

	// MQTT live feed
	if cfg.MQTTBroker != "" {
		feed := sensors.NewMQTTFeed(sensors.MQTTConfig{
			Broker:   cfg.MQTTBroker,
			ClientID: cfg.MQTTClientID,
			Username: cfg.MQTTUsername,
			Password: cfg.MQTTPassword,
			Topic:    cfg.MQTTTopic,
		}, readingService, log)
		go func() {
			if err := feed.Run(ctx); err != nil {
				log.Error("mqtt feed stopped", zap.Error(err))
			}
		}()
	}

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
