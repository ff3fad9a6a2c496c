package controllers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/gaunghar/admin-console/modules/core/presentation/controllers/dtos"
	"github.com/gaunghar/admin-console/modules/core/presentation/mappers"
	"github.com/gaunghar/admin-console/modules/core/presentation/templates/pages/profile"
	"github.com/gaunghar/admin-console/modules/core/services"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/intl"
	"github.com/gaunghar/admin-console/pkg/middleware"
)

// AccountController shows the signed-in administrator and changes their password.
type AccountController struct {
	app         application.Application
	authService *services.AuthService
	basePath    string
}

func NewAccountController(app application.Application) application.Controller {
	return &AccountController{
		app:         app,
		authService: app.Service(services.AuthService{}).(*services.AuthService),
		basePath:    "/profile",
	}
}

func (c *AccountController) Key() string {
	return c.basePath
}

func (c *AccountController) Register(r *mux.Router) {
	commonMiddleware := []mux.MiddlewareFunc{
		middleware.RedirectNotAuthenticated(),
		middleware.NavItems(c.app),
		middleware.WithPageContext(),
	}
	r.Handle(c.basePath, middleware.Chain(http.HandlerFunc(c.Get), commonMiddleware...)).Methods(http.MethodGet)
	r.Handle(c.basePath+"/password", middleware.Chain(http.HandlerFunc(c.ChangePassword), commonMiddleware...)).Methods(http.MethodPost)
}

func (c *AccountController) render(w http.ResponseWriter, r *http.Request, errorsMap map[string]string, errMsg string, status int) {
	sess, err := composables.UseSession(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	props := mappers.SessionToProfile(sess)
	props.Errors = errorsMap
	props.PostTo = c.basePath + "/password"
	props.Notice = useNotice(w, r)
	if errMsg != "" {
		props.Error = errMsg
	}
	templ.Handler(profile.Index(props), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (c *AccountController) Get(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, map[string]string{}, "", http.StatusOK)
}

func (c *AccountController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.ChangePasswordDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errorsMap, ok := dto.Ok(r.Context()); !ok {
		c.render(w, r, errorsMap, "", http.StatusUnprocessableEntity)
		return
	}
	if err := c.authService.ChangePassword(r.Context(), dto.OldPwd, dto.NewPwd); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to change password")
		c.render(w, r, map[string]string{}, backend.UserMessage(err, intl.T(r.Context(), "Profile.Password.Failed")), http.StatusOK)
		return
	}
	redirectWithFlash(w, r, c.basePath, flashSuccess, intl.T(r.Context(), "Profile.Password.Changed"))
}
