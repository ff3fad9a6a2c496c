package tole

import (
	"embed"

	"github.com/a-h/templ"

	"github.com/gaunghar/admin-console/components/layout"
	"github.com/gaunghar/admin-console/modules/tole/presentation/viewmodels"
	"github.com/gaunghar/admin-console/pkg/views"
)

//go:embed *.html
var FS embed.FS

var pages = views.MustParse(layout.FS, FS, "*.html")

func Index(props *viewmodels.ToleListPageProps) templ.Component {
	return pages.Page("index", "Tole.Titles.List", props)
}

func New(props *viewmodels.ToleFormPageProps) templ.Component {
	return pages.Page("form", "Tole.Titles.New", props)
}

func Edit(props *viewmodels.ToleFormPageProps) templ.Component {
	return pages.Page("form", "Tole.Titles.Edit", props)
}

// LocationFields is the cascade block swapped in place by htmx.
func LocationFields(props *viewmodels.ToleFormPageProps) templ.Component {
	return pages.Fragment("form", "location-fields", props)
}

func View(props *viewmodels.ToleViewPageProps) templ.Component {
	return pages.Page("view", "Tole.Titles.View", props)
}

func Confirm(props *viewmodels.ToleConfirmPageProps) templ.Component {
	return pages.Page("confirm", "Tole.Titles.Confirm", props)
}

func Extend(props *viewmodels.ToleExtendPageProps) templ.Component {
	return pages.Page("extend", "Tole.Titles.Extend", props)
}
