package controllers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/gaunghar/admin-console/modules/core/presentation/templates/pages/users"
	"github.com/gaunghar/admin-console/modules/core/presentation/viewmodels"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/middleware"
)

// UsersController is the placeholder for administrator management.
type UsersController struct {
	app      application.Application
	basePath string
}

func NewUsersController(app application.Application) application.Controller {
	return &UsersController{app: app, basePath: "/users"}
}

func (c *UsersController) Key() string {
	return c.basePath
}

func (c *UsersController) Register(r *mux.Router) {
	r.Handle(c.basePath, middleware.Chain(
		http.HandlerFunc(c.Index),
		middleware.RedirectNotAuthenticated(),
		middleware.NavItems(c.app),
		middleware.WithPageContext(),
	)).Methods(http.MethodGet)
}

func (c *UsersController) Index(w http.ResponseWriter, r *http.Request) {
	props := &viewmodels.UsersPageProps{Notice: useNotice(w, r)}
	templ.Handler(users.Index(props), templ.WithStreaming()).ServeHTTP(w, r)
}
