package views

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/session"
	"github.com/gaunghar/admin-console/pkg/types"
)

// Notice is a one-shot banner shown above the page content.
type Notice struct {
	Success string
	Error   string
}

func (n Notice) PageNotice() Notice {
	return n
}

type noticer interface {
	PageNotice() Notice
}

// Page is the value every template executes against.
type Page struct {
	Title   string
	Nav     []types.NavigationItem
	Session *session.Session
	Notice  Notice
	Props   any

	pageCtx types.PageContextProvider
}

func (p *Page) T(key string) string {
	if p.pageCtx == nil {
		return key
	}
	return p.pageCtx.TSafe(key)
}

// Tf translates key with pairs of template data, e.g. {{.Tf "Tole.Count" "Count" 3}}.
func (p *Page) Tf(key string, pairs ...any) string {
	if p.pageCtx == nil {
		return key
	}
	data := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		data[fmt.Sprint(pairs[i])] = pairs[i+1]
	}
	return p.pageCtx.TSafe(key, data)
}

func (p *Page) Path() string {
	if p.pageCtx == nil || p.pageCtx.GetURL() == nil {
		return ""
	}
	return p.pageCtx.GetURL().Path
}

func (p *Page) Locale() string {
	if p.pageCtx == nil {
		return "en"
	}
	return p.pageCtx.GetLocale().String()
}

func newPage(ctx context.Context, title string, props any) *Page {
	page := &Page{Props: props, Nav: composables.UseNavItems(ctx)}
	if n, ok := props.(noticer); ok {
		page.Notice = n.PageNotice()
	}
	if pageCtx, ok := composables.TryUsePageCtx(ctx); ok {
		page.pageCtx = pageCtx
		page.Title = pageCtx.TSafe(title)
	} else {
		page.Title = title
	}
	if s, err := composables.UseSession(ctx); err == nil {
		page.Session = s
	}
	return page
}

// Set is a family of pages that share the base layout. Each page file is
// parsed into its own clone of the base so they can all define "content".
type Set struct {
	pages map[string]*template.Template
}

// Parse builds a Set from the base layout files and the page files matching patterns.
// Page names are file names without the .html extension.
func Parse(base fs.FS, pages fs.FS, patterns ...string) (*Set, error) {
	root, err := template.New("base").Funcs(Funcs()).ParseFS(base, "*.html")
	if err != nil {
		return nil, err
	}
	set := &Set{pages: map[string]*template.Template{}}
	for _, pattern := range patterns {
		files, err := fs.Glob(pages, pattern)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			clone, err := root.Clone()
			if err != nil {
				return nil, err
			}
			t, err := clone.ParseFS(pages, file)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			set.pages[strings.TrimSuffix(path.Base(file), ".html")] = t
		}
	}
	return set, nil
}

func MustParse(base fs.FS, pages fs.FS, patterns ...string) *Set {
	set, err := Parse(base, pages, patterns...)
	if err != nil {
		panic(err)
	}
	return set
}

func (s *Set) lookup(page string) *template.Template {
	t, ok := s.pages[page]
	if !ok {
		panic(fmt.Sprintf("views: page %q not parsed", page))
	}
	return t
}

// Page renders page inside the full layout.
func (s *Set) Page(page, title string, props any) templ.Component {
	t := s.lookup(page)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, "layout", newPage(ctx, title, props))
	})
}

// Fragment renders one named template of page without the layout, for htmx swaps.
func (s *Set) Fragment(page, name string, props any) templ.Component {
	t := s.lookup(page)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, name, newPage(ctx, "", props))
	})
}
