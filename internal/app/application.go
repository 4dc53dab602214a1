// Package app wires the application's shared dependencies together for
// the HTTP handlers and middleware.
package app

import (
	"log/slog"

	"borgarlina.gagnavist.is/internal/appconf"
	"borgarlina.gagnavist.is/internal/config"
	"borgarlina.gagnavist.is/internal/coverage"
	"borgarlina.gagnavist.is/internal/dataset"
	"borgarlina.gagnavist.is/internal/transit"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Loader  *dataset.Loader
	Lines   *config.LinesConfig
	Engine  *coverage.Engine
	Transit *transit.Manager
}

// Config holds all the configuration settings for our Application. These
// are read from command-line flags and the environment when the server
// starts.
type Config struct {
	Port          int
	Env           appconf.Environment
	ApiKeys       []string
	RateLimit     int
	DataDir       string
	LinesPath     string
	GtfsSource    string
	RidershipPath string
	Verbose       bool
}

// NewApplication builds an Application from an initialized config,
// loading the line scenarios and preparing the dataset loader and
// analysis engine. The Stræto manager is only started when a GTFS source
// is configured.
func NewApplication(cfg Config, logger *slog.Logger) (*Application, error) {
	lines, err := config.Load(cfg.LinesPath)
	if err != nil {
		return nil, err
	}

	loader := dataset.NewLoader(cfg.DataDir)
	engine := coverage.NewEngine(loader, loader)

	application := &Application{
		Config: cfg,
		Logger: logger,
		Loader: loader,
		Lines:  lines,
		Engine: engine,
	}

	if cfg.GtfsSource != "" {
		manager, err := transit.InitManager(transit.Config{
			GtfsSource:    cfg.GtfsSource,
			RidershipPath: cfg.RidershipPath,
			Verbose:       cfg.Verbose,
		})
		if err != nil {
			return nil, err
		}
		application.Transit = manager
	}

	return application, nil
}

// Shutdown stops the background workers owned by the application.
func (app *Application) Shutdown() {
	if app.Transit != nil {
		app.Transit.Shutdown()
	}
}
