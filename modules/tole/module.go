package tole

import (
	"context"
	"embed"

	coreservices "github.com/gaunghar/admin-console/modules/core/services"
	"github.com/gaunghar/admin-console/modules/tole/infrastructure/persistence"
	"github.com/gaunghar/admin-console/modules/tole/presentation/controllers"
	"github.com/gaunghar/admin-console/modules/tole/services"
	"github.com/gaunghar/admin-console/pkg/application"
)

//go:embed presentation/locales/*.json
var localeFiles embed.FS

type ModuleOptions struct {
	PageSize    int
	MaxLogoSize int64
	CorsOrigins []string
}

func NewModule(opts *ModuleOptions) application.Module {
	if opts == nil {
		opts = &ModuleOptions{}
	}
	return &Module{options: opts}
}

type Module struct {
	options *ModuleOptions
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&localeFiles)

	toleService := services.NewToleService(persistence.NewToleRepository(app.Backend()))
	app.RegisterServices(
		toleService,
		services.NewLocationService(persistence.NewLocationRepository(app.Backend())),
	)

	dashboard := app.Service(coreservices.DashboardService{}).(*coreservices.DashboardService)
	dashboard.Register(m.Name(), statsCards(toleService))

	app.RegisterControllers(
		controllers.NewToleController(app, controllers.ToleControllerOptions{
			PageSize:    m.options.PageSize,
			MaxLogoSize: m.options.MaxLogoSize,
		}),
		controllers.NewLocationAPIController(app, m.options.CorsOrigins),
	)
	return nil
}

func (m *Module) Name() string {
	return "tole"
}

// statsCards puts the tole counters on the dashboard.
func statsCards(svc *services.ToleService) coreservices.CardSource {
	return func(ctx context.Context) ([]coreservices.Card, error) {
		stats, err := svc.Stats(ctx)
		if err != nil {
			return nil, err
		}
		return []coreservices.Card{
			{Label: "Tole.Stats.Total", Value: stats.Total, Href: "/tole"},
			{Label: "Tole.Stats.Active", Value: stats.Active, Class: "badge-active", Href: "/tole?status=active"},
			{Label: "Tole.Stats.Expired", Value: stats.Expired, Class: "badge-expired", Href: "/tole?status=expired"},
			{Label: "Tole.Stats.Disabled", Value: stats.Disabled, Class: "badge-disabled", Href: "/tole?status=inactive"},
		}, nil
	}
}
