package viewmodels

import "github.com/gaunghar/admin-console/pkg/views"

type HelplineRow struct {
	ID          string
	ForHelp     string
	ContactName string
	Contact     string
	IsActive    string
	Active      bool
}

type HelplineListPageProps struct {
	views.Notice
	Rows []*HelplineRow
}

type HelplineForm struct {
	ForHelp     string
	ContactName string
	Contact     string
	IsActive    string
}

type HelplineFormPageProps struct {
	views.Notice
	Form     *HelplineForm
	Errors   map[string]string
	IsNew    bool
	PostTo   string
	CancelTo string
}
