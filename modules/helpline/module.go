package helpline

import (
	"embed"

	"github.com/gaunghar/admin-console/modules/helpline/infrastructure/persistence"
	"github.com/gaunghar/admin-console/modules/helpline/presentation/controllers"
	"github.com/gaunghar/admin-console/modules/helpline/services"
	"github.com/gaunghar/admin-console/pkg/application"
)

//go:embed presentation/locales/*.json
var localeFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&localeFiles)
	app.RegisterServices(
		services.NewHelplineService(persistence.NewHelplineRepository(app.Backend())),
	)
	app.RegisterControllers(
		controllers.NewHelplineController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "helpline"
}
