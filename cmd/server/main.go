package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/health"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/reaper"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, logOut, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer closeLog()

	// Refuse to start without a converter.
	binPath, err := infra.LocateConverter(cfg.Converter, cfg.ConverterPath)
	if err != nil {
		log.Fatalf("converter: %v", err)
	}
	renderer, err := infra.NewRenderer(cfg.Converter, binPath)
	if err != nil {
		log.Fatalf("converter: %v", err)
	}
	logger.Info("converter located", "kind", cfg.Converter, "path", binPath)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("output dir: %v", err)
	}

	checkers := []health.Checker{
		health.NewDirChecker(cfg.OutputDir),
		health.NewBinaryChecker(binPath),
	}

	pool, err := infra.NewDocumentsPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Warn("documents DB not available", "error", err)
	}
	if pool != nil {
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool, logger); err != nil {
			log.Fatalf("migrations: %v", err)
		}
		checkers = append(checkers, health.NewPostgresChecker(pool))
	}
	documents := repo.NewDocumentsRepo(pool)

	files := reaper.New(reaper.RealClock(), logger)
	sweeper := reaper.NewSweeper(cfg.OutputDir, cfg.FileTTL, cfg.SweepInterval, logger)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("sweeper: %v", err)
	}
	defer sweeper.Stop()

	processor, err := usecase.NewProcessor(renderer, files, documents, usecase.ProcessorConfig{
		OutputDir:      cfg.OutputDir,
		FileTTL:        cfg.FileTTL,
		ConvertTimeout: cfg.ConverterTimeout,
	}, logger)
	if err != nil {
		log.Fatalf("processor: %v", err)
	}

	client := ai.NewClient(ai.Options{
		APIKey:        cfg.LLMAPIKey,
		BaseURL:       cfg.LLMBaseURL,
		Model:         cfg.LLMModel,
		MaxTokens:     cfg.LLMMaxTokens,
		Temperature:   cfg.LLMTemperature,
		Timeout:       cfg.LLMTimeout,
		RatePerSecond: cfg.LLMRatePerSecond,
		Burst:         cfg.LLMBurst,
	})
	var formatter usecase.SummaryFormatter
	if client.Configured() {
		formatter = client.NewSummaryFormatter()
	} else {
		logger.Warn("no language model API key set; summaries will return a placeholder")
	}
	summaries := usecase.NewSummaryService(formatter, logger)

	h, err := httpadapter.NewHandler(processor, summaries, httpadapter.HandlerOptions{
		Readiness:           health.NewService(checkers...),
		StrictSummaryStatus: cfg.SummaryStrictStatus,
		Logger:              logger,
	})
	if err != nil {
		log.Fatalf("handler: %v", err)
	}
	app := httpadapter.NewApp(h, httpadapter.AppOptions{
		SecretKey: cfg.SecretKey,
		AccessLog: logOut,
	})

	go func() {
		logger.Info("HTTP server listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("pending deletions at exit", "count", files.Pending())
}
