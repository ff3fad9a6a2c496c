package views

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/gaunghar/admin-console/pkg/constants"
	"github.com/gaunghar/admin-console/pkg/upload"
)

var assetPath = func(name string) string {
	return "/assets/" + name
}

// SetAssetResolver maps asset names to their served paths, e.g. content-hashed names.
func SetAssetResolver(fn func(name string) string) {
	assetPath = fn
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"asset": func(name string) string {
			return assetPath(name)
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format(constants.DateLayout)
		},
		"isoDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format(constants.DateLayout)
		},
		"imgSrc": func(stored, baseURL string) template.URL {
			// values are data URIs or URLs built from backend data
			return template.URL(upload.DisplaySrc(stored, baseURL))
		},
		"add":   func(a, b int) int { return a + b },
		"sub":   func(a, b int) int { return a - b },
		"lower": strings.ToLower,
		"dict": func(pairs ...any) (map[string]any, error) {
			if len(pairs)%2 != 0 {
				return nil, fmt.Errorf("dict: odd number of arguments")
			}
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				m[fmt.Sprint(pairs[i])] = pairs[i+1]
			}
			return m, nil
		},
		"selected": func(a, b string) template.HTMLAttr {
			if a == b {
				return "selected"
			}
			return ""
		},
		"checked": func(v bool) template.HTMLAttr {
			if v {
				return "checked"
			}
			return ""
		},
	}
}
