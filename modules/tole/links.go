package tole

import "github.com/gaunghar/admin-console/pkg/types"

var TolesLink = types.NavigationItem{
	Name: "NavigationLinks.Toles",
	Icon: "tole",
	Href: "/tole",
}

var NavItems = []types.NavigationItem{
	TolesLink,
}
