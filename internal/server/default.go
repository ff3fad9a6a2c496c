package server

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"

	"github.com/gaunghar/admin-console/modules/core/presentation/controllers"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/configuration"
	"github.com/gaunghar/admin-console/pkg/middleware"
	"github.com/gaunghar/admin-console/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
}

// limiterStore picks the store behind login rate limiting.
func limiterStore(logger *logrus.Logger, conf *configuration.Configuration) limiter.Store {
	if conf.RateLimit.Storage != configuration.StoreRedis {
		return middleware.NewMemoryStore()
	}
	store, err := middleware.NewRedisStore(conf.RateLimit.RedisURL)
	if err != nil {
		logger.WithError(err).Warn("Failed to create Redis store for rate limiting, falling back to memory")
		return middleware.NewMemoryStore()
	}
	return store
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	conf := options.Configuration

	loggerOpts := middleware.DefaultLoggerOptions()
	loggerOpts.RequestIDHeader = conf.RequestIDHeader
	loggerOpts.RealIPHeader = conf.RealIPHeader

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger, loggerOpts),

		middleware.TracedMiddleware("requestParams"),
		middleware.RequestParams(conf.RealIPHeader),

		middleware.TracedMiddleware("session"),
		middleware.ProvideSession(app.Sessions(), conf.Session.CookieKey),

		middleware.TracedMiddleware("localizer"),
		middleware.ProvideLocalizer(app),
	}
	if conf.RateLimit.Enabled {
		middleware.UseLimiterStore(limiterStore(options.Logger, conf))
	}

	app.RegisterMiddleware(middlewares...)

	serverInstance := server.NewHTTPServer(
		app,
		controllers.NotFound(app),
		controllers.MethodNotAllowed(app),
	)
	return serverInstance, nil
}
