package slider

import "github.com/gaunghar/admin-console/pkg/types"

var SlidersLink = types.NavigationItem{
	Name: "NavigationLinks.Sliders",
	Icon: "image",
	Href: "/slider",
}

var NavItems = []types.NavigationItem{
	SlidersLink,
}
