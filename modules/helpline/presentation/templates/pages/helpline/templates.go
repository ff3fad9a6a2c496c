package helpline

import (
	"embed"

	"github.com/a-h/templ"

	"github.com/gaunghar/admin-console/components/layout"
	"github.com/gaunghar/admin-console/modules/helpline/presentation/viewmodels"
	"github.com/gaunghar/admin-console/pkg/views"
)

//go:embed *.html
var FS embed.FS

var pages = views.MustParse(layout.FS, FS, "*.html")

func Index(props *viewmodels.HelplineListPageProps) templ.Component {
	return pages.Page("index", "Helpline.Titles.List", props)
}

func New(props *viewmodels.HelplineFormPageProps) templ.Component {
	return pages.Page("form", "Helpline.Titles.New", props)
}

func Edit(props *viewmodels.HelplineFormPageProps) templ.Component {
	return pages.Page("form", "Helpline.Titles.Edit", props)
}
