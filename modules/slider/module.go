package slider

import (
	"embed"

	"github.com/gaunghar/admin-console/modules/slider/infrastructure/persistence"
	"github.com/gaunghar/admin-console/modules/slider/presentation/controllers"
	"github.com/gaunghar/admin-console/modules/slider/services"
	"github.com/gaunghar/admin-console/pkg/application"
)

//go:embed presentation/locales/*.json
var localeFiles embed.FS

type ModuleOptions struct {
	MaxImageSize int64
	ImageBaseURL string
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
	app.RegisterServices(
		services.NewSliderService(persistence.NewSliderRepository(app.Backend())),
	)
	app.RegisterControllers(
		controllers.NewSliderController(app, controllers.SliderControllerOptions{
			MaxImageSize: m.options.MaxImageSize,
			ImageBaseURL: m.options.ImageBaseURL,
		}),
	)
	return nil
}

func (m *Module) Name() string {
	return "slider"
}
