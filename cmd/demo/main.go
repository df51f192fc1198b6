// Command demo runs an HTTP server exposing the demo validation endpoints.
//
// Configuration comes from the environment (see httpserver.Config and the
// APP_* variables below). A .env file in the working directory is loaded
// automatically.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/guardrail/modules/demo"
	"github.com/dmitrymomot/guardrail/pkg/config"
	"github.com/dmitrymomot/guardrail/pkg/httpserver"
	"github.com/dmitrymomot/guardrail/pkg/logger"
	"github.com/dmitrymomot/guardrail/pkg/requestid"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_NAME" envDefault:"guardrail-demo"`

	Server httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Environment, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	svc := demo.NewService(log, demo.Constraints())
	svc.Seed(
		demo.Item{ID: 5, Name: "first widget"},
		demo.Item{ID: 7, Name: "second widget"},
		demo.Item{ID: 9, Name: "gadget"},
	)

	ctx := context.Background()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Mount("/", svc.Handle())

	srv := httpserver.NewFromConfig(cfg.Server,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server started", "addr", cfg.Server.Addr)
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)

	if err := srv.Run(ctx, r); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
