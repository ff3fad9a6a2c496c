package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/gaunghar/admin-console/modules/core/domain/aggregates/account"
	"github.com/gaunghar/admin-console/modules/core/presentation/controllers/dtos"
	"github.com/gaunghar/admin-console/modules/core/presentation/templates/pages/login"
	"github.com/gaunghar/admin-console/modules/core/presentation/viewmodels"
	"github.com/gaunghar/admin-console/modules/core/services"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/htmx"
	"github.com/gaunghar/admin-console/pkg/intl"
	"github.com/gaunghar/admin-console/pkg/middleware"
	"github.com/gaunghar/admin-console/pkg/shared"
)

type LoginControllerOptions struct {
	CookieKey      string
	SecureCookie   bool
	LoginPerMinute int
}

func NewLoginController(app application.Application, opts LoginControllerOptions) application.Controller {
	if opts.CookieKey == "" {
		opts.CookieKey = "sid"
	}
	return &LoginController{
		app:         app,
		authService: app.Service(services.AuthService{}).(*services.AuthService),
		opts:        opts,
	}
}

type LoginController struct {
	app         application.Application
	authService *services.AuthService
	opts        LoginControllerOptions
}

func (c *LoginController) Key() string {
	return "/login"
}

func (c *LoginController) Register(r *mux.Router) {
	r.Handle("/login", middleware.Chain(
		http.HandlerFunc(c.Get),
		middleware.RedirectAuthenticated(homePath),
		middleware.WithPageContext(),
	)).Methods(http.MethodGet)

	postMiddleware := []mux.MiddlewareFunc{}
	if c.opts.LoginPerMinute > 0 {
		postMiddleware = append(postMiddleware, middleware.IPRateLimitPeriod(c.opts.LoginPerMinute, time.Minute))
	}
	r.Handle("/login", middleware.Chain(http.HandlerFunc(c.Post), postMiddleware...)).Methods(http.MethodPost)

	r.HandleFunc("/logout", c.Logout).Methods(http.MethodPost)
}

func loginURL(userName, next string) string {
	q := url.Values{}
	if userName != "" {
		q.Set("UserName", userName)
	}
	if next != "" {
		q.Set("next", next)
	}
	if len(q) == 0 {
		return "/login"
	}
	return "/login?" + q.Encode()
}

func (c *LoginController) Get(w http.ResponseWriter, r *http.Request) {
	errorsMap, err := composables.UseFlashMap[string, string](w, r, flashErrorsMap)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	q := r.URL.Query()
	props := &viewmodels.LoginPageProps{
		Notice:   useNotice(w, r),
		UserName: q.Get("UserName"),
		ToleID:   c.authService.DefaultToleID(),
		Next:     q.Get("next"),
		Errors:   errorsMap,
		PostTo:   "/login",
	}
	if props.Errors == nil {
		props.Errors = map[string]string{}
	}
	if props.Next != "" {
		props.PostTo = "/login?" + url.Values{"next": {props.Next}}.Encode()
	}
	templ.Handler(login.Index(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *LoginController) Post(w http.ResponseWriter, r *http.Request) {
	logger := composables.UseLogger(r.Context())
	next := r.URL.Query().Get("next")
	dto, err := composables.UseForm(&dtos.LoginDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errorsMap, ok := dto.Ok(r.Context()); !ok {
		shared.SetFlashMap(w, flashErrorsMap, errorsMap)
		http.Redirect(w, r, loginURL(dto.UserName, next), http.StatusFound)
		return
	}

	sess, err := c.authService.Login(r.Context(), account.Credentials{
		ToleID:   dto.ToleID,
		UserName: dto.UserName,
		Password: dto.Password,
	})
	if err != nil {
		msg := intl.T(r.Context(), "Login.Errors.Invalid")
		if !errors.Is(err, account.ErrInvalidCredentials) {
			logger.WithError(err).Error("failed to authenticate administrator")
			msg = backend.UserMessage(err, intl.T(r.Context(), "Errors.Internal"))
		}
		shared.SetFlash(w, flashError, []byte(msg))
		http.Redirect(w, r, loginURL(dto.UserName, next), http.StatusFound)
		return
	}

	middleware.SetSessionCookie(w, c.opts.CookieKey, sess, c.opts.SecureCookie)
	http.Redirect(w, r, safeNext(next, homePath), http.StatusFound)
}

func (c *LoginController) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(c.opts.CookieKey); err == nil {
		if err := c.authService.Logout(r.Context(), cookie.Value); err != nil {
			composables.UseLogger(r.Context()).WithError(err).Warn("failed to delete session")
		}
	}
	middleware.ClearSessionCookie(w, c.opts.CookieKey)
	htmx.Redirect(w, r, "/login")
}
