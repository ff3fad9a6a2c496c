package login

import (
	"embed"

	"github.com/a-h/templ"

	"github.com/gaunghar/admin-console/components/layout"
	"github.com/gaunghar/admin-console/modules/core/presentation/viewmodels"
	"github.com/gaunghar/admin-console/pkg/views"
)

//go:embed *.html
var FS embed.FS

var pages = views.MustParse(layout.FS, FS, "*.html")

func Index(props *viewmodels.LoginPageProps) templ.Component {
	return pages.Page("index", "Login.Title", props)
}
