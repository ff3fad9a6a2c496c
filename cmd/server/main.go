package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/sirupsen/logrus"

	internalassets "github.com/gaunghar/admin-console/internal/assets"
	"github.com/gaunghar/admin-console/internal/server"
	"github.com/gaunghar/admin-console/modules"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/configuration"
	"github.com/gaunghar/admin-console/pkg/logging"
	"github.com/gaunghar/admin-console/pkg/metrics"
	"github.com/gaunghar/admin-console/pkg/session"
	"github.com/gaunghar/admin-console/pkg/views"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	if conf.OpenTelemetry.Enabled {
		tracingCleanup := logging.SetupTracing(
			context.Background(),
			conf.OpenTelemetry.ServiceName,
			conf.OpenTelemetry.TempoURL,
		)
		defer tracingCleanup()
		logger.Info("OpenTelemetry tracing enabled, exporting to Tempo at " + conf.OpenTelemetry.TempoURL)
	}

	sessions, err := sessionStore(conf, logger)
	if err != nil {
		log.Fatalf("failed to create session store: %v", err)
	}

	app := application.New(&application.ApplicationOptions{
		Backend: backend.NewClient(backend.Options{
			BaseURL: conf.Backend.URL,
			Timeout: conf.Backend.Timeout,
			Logger:  logger,
		}),
		Sessions: sessions,
		Logger:   logger,
		Bundle:   application.LoadBundle(),
	})
	app.RegisterHashFsAssets(internalassets.HashFS)
	views.SetAssetResolver(internalassets.Path)

	if err := modules.Load(app, modules.BuiltInModules(conf)...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}
	app.RegisterNavItems(modules.NavLinks...)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(ctx, conf.SocketAddress); err != nil {
		logger.WithError(err).Error("server stopped")
	}
}

func sessionStore(conf *configuration.Configuration, logger *logrus.Logger) (session.Store, error) {
	if conf.Session.Store != configuration.StoreRedis {
		return session.NewMemoryStore(conf.Session.Duration), nil
	}
	store, err := session.NewRedisStore(conf.RedisURL, conf.Session.Duration)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), conf.Backend.Timeout)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		logger.WithError(err).Warn("redis session store is not reachable yet")
	}
	return store, nil
}
