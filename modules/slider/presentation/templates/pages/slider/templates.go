package slider

import (
	"embed"

	"github.com/a-h/templ"

	"github.com/gaunghar/admin-console/components/layout"
	"github.com/gaunghar/admin-console/modules/slider/presentation/viewmodels"
	"github.com/gaunghar/admin-console/pkg/views"
)

//go:embed *.html
var FS embed.FS

var pages = views.MustParse(layout.FS, FS, "*.html")

func Index(props *viewmodels.SliderListPageProps) templ.Component {
	return pages.Page("index", "Slider.Titles.List", props)
}

func New(props *viewmodels.SliderFormPageProps) templ.Component {
	return pages.Page("form", "Slider.Titles.New", props)
}

func Edit(props *viewmodels.SliderFormPageProps) templ.Component {
	return pages.Page("form", "Slider.Titles.Edit", props)
}
