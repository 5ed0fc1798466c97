package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/octobees/barber-finder/api/internal/config"
	"github.com/octobees/barber-finder/api/internal/controller"
	"github.com/octobees/barber-finder/api/internal/gemini"
	"github.com/octobees/barber-finder/api/internal/handler"
	middlewarepkg "github.com/octobees/barber-finder/api/internal/middleware"
	"github.com/octobees/barber-finder/api/internal/router"
	"github.com/octobees/barber-finder/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	logger := newLogger(cfg)

	e, scheduler, err := newServer(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build server")
	}
	scheduler.Start()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Str("model", cfg.GeminiModel).Msg("starting server")
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		<-scheduler.Stop().Done()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
	}
}

// newServer wires the search stack, the session registry and its sweep
// schedule. The returned scheduler is not started.
func newServer(cfg *config.Config, logger zerolog.Logger) (*echo.Echo, *cron.Cron, error) {
	var generator gemini.Generator
	if cfg.GeminiAPIKey != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpClient := &http.Client{Timeout: 60 * time.Second}
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiBaseURL, httpClient)
		if err != nil {
			return nil, nil, fmt.Errorf("create gemini client: %w", err)
		}
		generator = client
	} else {
		logger.Warn().Msg("API_KEY is not set, searches will fail until it is configured")
	}

	searchService := service.NewSearchService(cfg.GeminiAPIKey, cfg.GeminiModel, generator, logger.With().Str("component", "search").Logger())
	registry := controller.NewRegistry(searchService, cfg.SessionIdleTTL, logger.With().Str("component", "controller").Logger())

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.SessionSweep, func() {
		registry.Sweep(time.Now())
	}); err != nil {
		return nil, nil, fmt.Errorf("schedule session sweep %q: %w", cfg.SessionSweep, err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger))
	e.Use(echoMiddleware.Recover())

	router.Register(e, registry, router.Handlers{
		Search: handler.NewSearchHandler(),
	})

	return e, scheduler, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	var logger zerolog.Logger
	if cfg.LogFormat == config.LogFormatConsole {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(cfg.LogLevel).With().Timestamp().Str("service", "barber-finder").Logger()
}
