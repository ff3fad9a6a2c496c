package viewmodels

import (
	"github.com/gaunghar/admin-console/pkg/views"
)

type ToleRow struct {
	ID          string
	Name        string
	Address     string
	WardNo      int
	Contact     string
	Email       string
	Logo        string
	AllowApp    string
	AllowAppOn  bool
	Status      string
	StatusClass string
	RegDate     string
	ExpiryDate  string
}

type ToleDetail struct {
	ToleRow
	Province     string
	District     string
	Municipality string
	About        string
	Website      string
	Facebook     string
	Latitude     string
	Longitude    string
	CreatedDate  string
}

type StatsCard struct {
	Label string
	Value int
	Class string
}

type StatusOption struct {
	Value string
	Label string
}

type ToleListPageProps struct {
	views.Notice
	Rows       []*ToleRow
	Stats      []StatsCard
	Search     string
	Status     string
	Statuses   []StatusOption
	PageSize   int
	PageSizes  []int
	Pagination views.Pagination
	ExportURL  string
}

// ToleForm holds the raw form values so a rejected submit re-renders as typed.
type ToleForm struct {
	ToleID     string
	Name       string
	Address    string
	WardNo     string
	Contact    string
	Email      string
	Logo       string
	About      string
	Website    string
	Facebook   string
	RegDate    string
	Latitude   string
	Longitude  string
	AllowApp   string
	ExpiryDate string
}

type LocationFieldsProps struct {
	Province       string
	District       string
	Municipality   string
	Provinces      []LocationOption
	Districts      []LocationOption
	Municipalities []LocationOption
	DistrictOn     bool
	MunicipalityOn bool
	FieldsURL      string
	Errors         map[string]string
}

type LocationOption struct {
	ID   string
	Name string
}

type ToleFormPageProps struct {
	views.Notice
	Form     *ToleForm
	Location *LocationFieldsProps
	Errors   map[string]string
	IsNew    bool
	PostTo   string
	CancelTo string
}

type ToleViewPageProps struct {
	views.Notice
	Tole *ToleDetail
}

type ToleConfirmPageProps struct {
	views.Notice
	Tole     *ToleRow
	Action   string
	Message  string
	PostTo   string
	AllowApp string
	Danger   bool
}

type ToleExtendPageProps struct {
	views.Notice
	Tole       *ToleRow
	ExpiryDate string
	Error      string
	PostTo     string
}
