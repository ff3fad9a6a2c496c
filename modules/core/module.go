package core

import (
	"embed"

	"github.com/gaunghar/admin-console/modules/core/infrastructure/persistence"
	"github.com/gaunghar/admin-console/modules/core/presentation/controllers"
	"github.com/gaunghar/admin-console/modules/core/services"
	"github.com/gaunghar/admin-console/pkg/application"
)

//go:embed presentation/locales/*.json
var LocaleFiles embed.FS

const DefaultToleID = "ES25"

type ModuleOptions struct {
	// Tole sent with the login request; the backend resolves the real one.
	DefaultToleID  string
	CookieKey      string
	SecureCookie   bool
	LoginPerMinute int
	Production     bool
}

func NewModule(opts *ModuleOptions) application.Module {
	if opts == nil {
		opts = &ModuleOptions{}
	}
	if opts.DefaultToleID == "" {
		opts.DefaultToleID = DefaultToleID
	}
	return &Module{
		options: opts,
	}
}

type Module struct {
	options *ModuleOptions
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)

	app.RegisterServices(
		services.NewAuthService(persistence.NewAuthRepository(app.Backend()), app.Sessions(), m.options.DefaultToleID),
		services.NewDashboardService(),
	)

	app.RegisterControllers(
		controllers.NewLoginController(app, controllers.LoginControllerOptions{
			CookieKey:      m.options.CookieKey,
			SecureCookie:   m.options.SecureCookie,
			LoginPerMinute: m.options.LoginPerMinute,
		}),
		controllers.NewDashboardController(app),
		controllers.NewAccountController(app),
		controllers.NewUsersController(app),
		controllers.NewLocaleController(app),
		controllers.NewStaticFilesController(app.HashFsAssets, m.options.Production),
	)
	return nil
}

func (m *Module) Name() string {
	return "core"
}
