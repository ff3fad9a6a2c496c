package application

import (
	"testing"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaunghar/admin-console/pkg/types"
)

type stubController struct{ key string }

func (c *stubController) Register(*mux.Router) {}
func (c *stubController) Key() string          { return c.key }

type stubService struct{ name string }

func TestApplication_ServiceRegistry(t *testing.T) {
	app := New(&ApplicationOptions{})
	app.RegisterServices(&stubService{name: "tole"})

	svc := app.Service(stubService{}).(*stubService)
	assert.Equal(t, "tole", svc.name)
	assert.Panics(t, func() { app.Service(struct{}{}) })
}

func TestApplication_ControllersOrderedBySpecificity(t *testing.T) {
	app := New(&ApplicationOptions{})
	app.RegisterControllers(&stubController{key: "/"}, &stubController{key: "/tole"}, &stubController{key: "/assets"})

	keys := []string{}
	for _, c := range app.Controllers() {
		keys = append(keys, c.Key())
	}
	assert.Equal(t, []string{"/assets", "/tole", "/"}, keys)
}

func TestApplication_NavItemsTranslated(t *testing.T) {
	bundle := LoadBundle()
	bundle.MustParseMessageFileBytes([]byte(`{"NavigationLinks": {"Toles": "Toles"}}`), "en.json")
	app := New(&ApplicationOptions{Bundle: bundle})
	app.RegisterNavItems(
		types.NavigationItem{Name: "NavigationLinks.Toles", Href: "/tole"},
		types.NavigationItem{Name: "NavigationLinks.Unknown", Href: "/x"},
	)

	items := app.NavItems(i18n.NewLocalizer(bundle, "en"))
	require.Len(t, items, 2)
	assert.Equal(t, "Toles", items[0].Name)
	assert.Equal(t, "NavigationLinks.Unknown", items[1].Name)
}
