package errorpages

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

func NotFound(props *viewmodels.ErrorPageProps) templ.Component {
	return pages.Page("error", "Errors.NotFound.Title", props)
}

func MethodNotAllowed(props *viewmodels.ErrorPageProps) templ.Component {
	return pages.Page("error", "Errors.MethodNotAllowed.Title", props)
}
