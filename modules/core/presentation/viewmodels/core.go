package viewmodels

import "github.com/gaunghar/admin-console/pkg/views"

type LoginPageProps struct {
	views.Notice
	UserName string
	ToleID   string
	Next     string
	Errors   map[string]string
	PostTo   string
}

type DashboardCard struct {
	Label string
	Value int
	Class string
	Href  string
}

type DashboardPageProps struct {
	views.Notice
	Name  string
	Cards []DashboardCard
}

// ProfileField is one labelled row of the profile card.
type ProfileField struct {
	Label string
	Value string
}

type ProfilePageProps struct {
	views.Notice
	Name     string
	UserName string
	Image    string
	Personal []ProfileField
	Tole     []ProfileField
	Errors   map[string]string
	PostTo   string
}

type UsersPageProps struct {
	views.Notice
}

type ErrorPageProps struct {
	Code    int
	Title   string
	Message string
}
