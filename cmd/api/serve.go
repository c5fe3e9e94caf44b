package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"huntapi/internal/config"
	"huntapi/internal/database"
	"huntapi/internal/database/migration"
	handlers "huntapi/internal/http/handler"
	"huntapi/internal/http/middleware"
	"huntapi/internal/logger"
	"huntapi/internal/otel"
	"huntapi/internal/repository/sqlrepo"
	"huntapi/internal/service"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log, os.Stdout)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.AppConfig, log zerolog.Logger) error {
	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}

	db, dialect, err := database.Open(cfg.Database)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to connect to database")
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, dialect, log); err != nil {
			return err
		}
	}

	app, err := newApp(cfg, db, dialect, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ":"+cfg.Port).Str("api_prefix", cfg.APIPrefix).Msg("server_starting")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = app.ShutdownWithContext(shutdownCtx)
	if terr := shutdownTracing(shutdownCtx); terr != nil {
		err = errors.Join(err, terr)
	}
	if err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
		return err
	}
	log.Info().Msg("server_stopped")
	return nil
}

// newApp wires repositories, services, middleware and routes over db.
func newApp(cfg *config.AppConfig, db *sql.DB, dialect database.Dialect, log zerolog.Logger) (*fiber.App, error) {
	svcs := service.New(service.Repositories{
		Sites:     sqlrepo.NewSiteSQL(db, dialect),
		Huntable:  sqlrepo.NewHuntableSpeciesSQL(db, dialect),
		Documents: sqlrepo.NewDocumentSQL(db, dialect),
		Geography: sqlrepo.NewGeographySQL(db, dialect),
		Harvest:   sqlrepo.NewHarvestSQL(db, dialect),
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, string(dialect)),
	)
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "huntapi",
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())
	app.Use(middleware.CORS(cfg.CORS))

	handlers.RegisterRoutes(app, handlers.Options{
		DB:       db,
		Services: svcs,
		Metrics:  reg,
		Prefix:   cfg.APIPrefix,
	})
	return app, nil
}
