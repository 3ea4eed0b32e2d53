package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stylistapi/config"
	"stylistapi/controllers"
	"stylistapi/dbhelper"
	"stylistapi/logger"
	"stylistapi/services"
	"stylistapi/storage"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.Env)

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Env,
			Release:          "stylistapi@1.0.0",
			TracesSampleRate: 0.2,
		})
		if err != nil {
			log.WithError(err).Fatal("sentry.Init")
		}
		defer sentry.Flush(2 * time.Second)
	}

	store, err := openStorage(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open storage")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedData {
		seeded, err := storage.SeedIfEmpty(ctx, store)
		if err != nil {
			log.WithError(err).Fatal("failed to seed sample data")
		}
		log.WithField("seeded", seeded).Info("sample data checked")
	}

	var awsService services.AWSServiceProvider
	var urlCache services.URLCacheServiceProvider
	if cfg.Uploads.Configured() {
		presigner, err := services.NewAWSService(ctx, cfg.Uploads)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize object storage")
		}
		cache, err := services.NewURLCacheService(presigner, cfg.Uploads.URLExpiration, log)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize URL cache")
		}
		awsService, urlCache = presigner, cache
	} else {
		log.Info("R2 credentials not set, image uploads disabled")
	}
	if cfg.Analysis.APIKey == "" {
		log.Warn("GOOGLE_API_KEY is not set, photo analysis requests will fail")
	}
	analyzer := services.NewGeminiStyleAnalyzer(cfg.Analysis, log)

	e := controllers.SetupServer(store, analyzer, awsService, urlCache, cfg, log)

	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "storage": store.Backend()}).Info("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

func openStorage(cfg config.Config, log *logrus.Logger) (storage.Storage, error) {
	if cfg.StorageBackend == config.BackendPostgres {
		db, err := dbhelper.SetupDB(cfg.Database, log)
		if err != nil {
			return nil, err
		}
		return storage.NewDatabaseStorage(db), nil
	}
	return storage.NewMemStorage(), nil
}
