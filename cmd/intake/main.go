// Command intake serves the record endpoints and writes validated records to MongoDB.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/docschema/handler"
	"github.com/dmitrymomot/docschema/pkg/config"
	"github.com/dmitrymomot/docschema/pkg/httpserver"
	"github.com/dmitrymomot/docschema/pkg/logger"
	"github.com/dmitrymomot/docschema/pkg/mongo"
	"github.com/dmitrymomot/docschema/pkg/requestid"
	"github.com/dmitrymomot/docschema/schema"
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Name            string `env:"APP_NAME" envDefault:"intake"`
	LogLevel        string `env:"LOG_LEVEL"`
	CollectionsFile string `env:"COLLECTIONS_FILE"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "intake: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg   appConfig
		mongoCfg mongo.Config
		httpCfg  httpserver.Config
	)
	if err := errors.Join(
		config.Load(&appCfg),
		config.Load(&mongoCfg),
		config.Load(&httpCfg),
	); err != nil {
		return err
	}

	log, err := newLogger(appCfg)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	collections, err := loadCollections(appCfg.CollectionsFile)
	if err != nil {
		return err
	}
	for model, name := range collections.Overrides() {
		log.Info("collection override", logger.Model(model), logger.Collection(name))
	}

	db, err := mongo.NewWithDatabase(ctx, mongoCfg)
	if err != nil {
		return err
	}
	client := db.Client()
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error("failed to disconnect from mongo", logger.Error(err))
		}
	}()

	store := mongo.NewStore(db, collections)

	return httpserver.New(httpCfg, log).Run(ctx, router(store, mongo.Healthcheck(client), log))
}

func newLogger(cfg appConfig) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

func loadCollections(path string) (*schema.Collections, error) {
	if path == "" {
		return schema.NewCollections(nil)
	}
	return schema.LoadCollections(path)
}

func router(store handler.Store, ready func(context.Context) error, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.Recoverer)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, ready))
	r.Mount("/", handler.Records(store, log))
	return r
}
