package controllers

import (
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/gorilla/mux"

	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/middleware"
)

// LocaleController switches the UI language and sends the operator back.
type LocaleController struct {
	app application.Application
}

func NewLocaleController(app application.Application) application.Controller {
	return &LocaleController{app: app}
}

func (c *LocaleController) Key() string {
	return "/lang"
}

func (c *LocaleController) Register(r *mux.Router) {
	r.HandleFunc("/lang/{code}", c.Switch).Methods(http.MethodGet)
}

func (c *LocaleController) Switch(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if !slices.Contains(c.app.GetSupportedLanguages(), code) {
		http.Error(w, "unsupported language", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.LocaleCookie,
		Value:    code,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	back := homePath
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" && (ref.Host == "" || ref.Host == r.Host) {
		back = safeNext(ref.RequestURI(), homePath)
	}
	http.Redirect(w, r, back, http.StatusFound)
}
