package viewmodels

import "github.com/gaunghar/admin-console/pkg/views"

type SliderRow struct {
	ID          string
	Title       string
	Image       string
	RedirectURL string
	Order       int
	Active      bool
	First       bool
	Last        bool
	UpdatedDate string
}

type SliderListPageProps struct {
	views.Notice
	Rows      []*SliderRow
	ImageBase string
}

type SliderForm struct {
	Title    string
	Image    string
	RedURL   string
	ImgOrder string
	IsActive string
}

type SliderFormPageProps struct {
	views.Notice
	Form      *SliderForm
	Errors    map[string]string
	IsNew     bool
	PostTo    string
	CancelTo  string
	ImageBase string
}
