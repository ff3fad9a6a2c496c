package controllers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/gaunghar/admin-console/modules/core/presentation/templates/pages/dashboard"
	"github.com/gaunghar/admin-console/modules/core/presentation/viewmodels"
	"github.com/gaunghar/admin-console/modules/core/services"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/intl"
	"github.com/gaunghar/admin-console/pkg/middleware"
)

type DashboardController struct {
	app       application.Application
	dashboard *services.DashboardService
}

func NewDashboardController(app application.Application) application.Controller {
	return &DashboardController{
		app:       app,
		dashboard: app.Service(services.DashboardService{}).(*services.DashboardService),
	}
}

func (c *DashboardController) Key() string {
	return homePath
}

func (c *DashboardController) Register(r *mux.Router) {
	r.Handle("/", middleware.Chain(
		http.RedirectHandler(homePath, http.StatusFound),
		middleware.RedirectNotAuthenticated(),
	)).Methods(http.MethodGet)
	r.Handle(homePath, middleware.Chain(
		http.HandlerFunc(c.Index),
		middleware.RedirectNotAuthenticated(),
		middleware.NavItems(c.app),
		middleware.WithPageContext(),
	)).Methods(http.MethodGet)
}

func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	props := &viewmodels.DashboardPageProps{Notice: useNotice(w, r)}
	if sess, err := composables.UseSession(r.Context()); err == nil {
		props.Name = sess.FullName()
	}

	cards, failed := c.dashboard.Cards(r.Context())
	for _, card := range cards {
		props.Cards = append(props.Cards, viewmodels.DashboardCard{
			Label: card.Label,
			Value: card.Value,
			Class: card.Class,
			Href:  card.Href,
		})
	}
	if len(failed) > 0 {
		logger := composables.UseLogger(r.Context())
		for _, err := range failed {
			logger.WithError(err).Warn("dashboard source failed")
		}
		if props.Error == "" {
			props.Error = backend.UserMessage(failed[0], intl.T(r.Context(), "Dashboard.Errors.StatsFailed"))
		}
	}
	templ.Handler(dashboard.Index(props), templ.WithStreaming()).ServeHTTP(w, r)
}
