package core

import "github.com/gaunghar/admin-console/pkg/types"

var DashboardLink = types.NavigationItem{
	Name: "NavigationLinks.Dashboard",
	Icon: "dashboard",
	Href: "/dashboard",
}

var UsersLink = types.NavigationItem{
	Name: "NavigationLinks.Users",
	Icon: "users",
	Href: "/users",
}

var ProfileLink = types.NavigationItem{
	Name: "NavigationLinks.Profile",
	Icon: "profile",
	Href: "/profile",
}

var NavItems = []types.NavigationItem{
	DashboardLink,
	UsersLink,
}
