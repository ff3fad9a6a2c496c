package modules

import (
	"slices"

	"github.com/gaunghar/admin-console/modules/core"
	"github.com/gaunghar/admin-console/modules/helpline"
	"github.com/gaunghar/admin-console/modules/slider"
	"github.com/gaunghar/admin-console/modules/tole"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/configuration"
)

var NavLinks = slices.Concat(
	core.NavItems,
	tole.NavItems,
	helpline.NavItems,
	slider.NavItems,
)

// BuiltInModules returns the console modules configured from conf.
func BuiltInModules(conf *configuration.Configuration) []application.Module {
	loginPerMinute := 0
	if conf.RateLimit.Enabled {
		loginPerMinute = conf.RateLimit.LoginPerMinute
	}
	production := conf.GoAppEnvironment == configuration.Production
	return []application.Module{
		core.NewModule(&core.ModuleOptions{
			CookieKey:      conf.Session.CookieKey,
			SecureCookie:   production,
			LoginPerMinute: loginPerMinute,
			Production:     production,
		}),
		tole.NewModule(&tole.ModuleOptions{
			PageSize:    conf.PageSize,
			MaxLogoSize: conf.Upload.MaxLogoSize,
			CorsOrigins: conf.CorsOrigins,
		}),
		helpline.NewModule(),
		slider.NewModule(&slider.ModuleOptions{
			MaxImageSize: conf.Upload.MaxSliderSize,
			ImageBaseURL: conf.Backend.ImageBaseURL,
		}),
	}
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
