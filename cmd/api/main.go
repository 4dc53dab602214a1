package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"borgarlina.gagnavist.is/internal/app"
	"borgarlina.gagnavist.is/internal/appconf"
	"borgarlina.gagnavist.is/internal/logging"
	"borgarlina.gagnavist.is/internal/restapi"

	"github.com/joho/godotenv"
)

func main() {
	// Local development overrides; the file is optional.
	_ = godotenv.Load()

	var cfg app.Config
	var envFlag string
	var apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", envOrDefault("BORGARLINA_ENV", "development"), "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", envOrDefault("BORGARLINA_API_KEYS", "test"), "Comma separated API keys")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second allowed per API key")
	flag.StringVar(&cfg.DataDir, "data-dir", envOrDefault("BORGARLINA_DATA_DIR", "data"), "Directory holding the published datasets")
	flag.StringVar(&cfg.LinesPath, "lines-config", "", "Path to a line scenarios config file (built-in scenarios when empty)")
	flag.StringVar(&cfg.GtfsSource, "gtfs-source", os.Getenv("BORGARLINA_GTFS_SOURCE"), "URL or path of a static GTFS zip with the current bus network")
	flag.StringVar(&cfg.RidershipPath, "ridership", "", "Path to the bus stop ridership CSV")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Log dataset statistics on startup")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer application.Shutdown()

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error, 1)
	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigs

		logger.Info("shutting down server", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
