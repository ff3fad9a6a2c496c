package helpline

import "github.com/gaunghar/admin-console/pkg/types"

var HelplinesLink = types.NavigationItem{
	Name: "NavigationLinks.Helplines",
	Icon: "phone",
	Href: "/helpline",
}

var NavItems = []types.NavigationItem{
	HelplinesLink,
}
