// Package itf builds an application wired to a fake backend for controller tests.
package itf

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/gaunghar/admin-console/internal/assets"
	"github.com/gaunghar/admin-console/internal/server"
	"github.com/gaunghar/admin-console/modules/core"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/configuration"
	"github.com/gaunghar/admin-console/pkg/session"
)

const CookieKey = "sid"

// TestContext provides a fluent API for building test environments.
type TestContext struct {
	modules []application.Module
	session *session.Session
}

func NewTestContext() *TestContext {
	return &TestContext{}
}

// WithModules adds modules on top of core.
func (tc *TestContext) WithModules(modules ...application.Module) *TestContext {
	tc.modules = append(tc.modules, modules...)
	return tc
}

// WithSession stores s as the environment's administrator instead of
// DefaultSession. Requests made with Anonymous carry no session cookie.
func (tc *TestContext) WithSession(s *session.Session) *TestContext {
	tc.session = s
	return tc
}

// DefaultSession is the administrator environments are signed in as.
func DefaultSession() *session.Session {
	return &session.Session{
		UserID: "1",
		ToleID: "ES25",
		Profile: session.Profile{
			UserName:  "admin",
			FirstName: "Sita",
			LastName:  "Sharma",
			ToleName:  "Shanti Tole",
		},
	}
}

func testConfiguration(backendURL string) *configuration.Configuration {
	c := &configuration.Configuration{
		PageSize:        10,
		RequestIDHeader: "X-Request-ID",
		RealIPHeader:    "X-Real-IP",
	}
	c.Backend.URL = backendURL
	c.Backend.Timeout = 5 * time.Second
	c.Session.Store = configuration.StoreMemory
	c.Session.CookieKey = CookieKey
	c.Session.Duration = time.Hour
	c.RateLimit.Storage = configuration.StoreMemory
	c.Upload.MaxLogoSize = 5 << 20
	c.Upload.MaxSliderSize = 2 << 20
	return c
}

// Build wires core plus the requested modules to a fresh fake backend.
func (tc *TestContext) Build(tb testing.TB) *TestEnvironment {
	tb.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	fake := NewFakeBackend(tb)
	conf := testConfiguration(fake.URL())
	store := session.NewMemoryStore(conf.Session.Duration)

	app := application.New(&application.ApplicationOptions{
		Backend:  backend.NewClient(backend.Options{BaseURL: conf.Backend.URL, Timeout: conf.Backend.Timeout, Logger: logger}),
		Sessions: store,
		Logger:   logger,
	})
	app.RegisterHashFsAssets(assets.HashFS)
	app.RegisterNavItems(core.NavItems...)

	modules := append([]application.Module{core.NewModule(&core.ModuleOptions{CookieKey: CookieKey})}, tc.modules...)
	for _, m := range modules {
		if err := m.Register(app); err != nil {
			tb.Fatalf("register module %s: %v", m.Name(), err)
		}
	}

	srv, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	if err != nil {
		tb.Fatal(err)
	}

	s := tc.session
	if s == nil {
		s = DefaultSession()
	}
	created, err := store.Create(context.Background(), s)
	if err != nil {
		tb.Fatal(err)
	}

	return &TestEnvironment{
		App:     app,
		Backend: fake,
		Store:   store,
		Session: created,
		Router:  srv.Router(),
		Ctx:     composables.WithSession(context.Background(), created),
	}
}

// TestEnvironment contains all test dependencies.
type TestEnvironment struct {
	Ctx     context.Context
	App     application.Application
	Backend *FakeBackend
	Store   *session.MemoryStore
	Session *session.Session
	Router  *mux.Router
}

// Service retrieves a service from the application.
func (te *TestEnvironment) Service(service interface{}) interface{} {
	return te.App.Service(service)
}

// GetService is a generic helper that retrieves and casts a service.
func GetService[T any](te *TestEnvironment) *T {
	var zero T
	return te.App.Service(zero).(*T)
}
