package types

import "strings"

type NavigationItem struct {
	Name     string
	Href     string
	Icon     string
	Children []NavigationItem
}

// Active reports whether path falls under the item.
func (n NavigationItem) Active(path string) bool {
	if n.Href == "/" {
		return path == "/"
	}
	return path == n.Href || strings.HasPrefix(path, n.Href+"/")
}
