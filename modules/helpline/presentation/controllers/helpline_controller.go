package controllers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/gaunghar/admin-console/modules/helpline/domain/aggregates/helpline"
	"github.com/gaunghar/admin-console/modules/helpline/presentation/controllers/dtos"
	"github.com/gaunghar/admin-console/modules/helpline/presentation/mappers"
	helplinetemplates "github.com/gaunghar/admin-console/modules/helpline/presentation/templates/pages/helpline"
	"github.com/gaunghar/admin-console/modules/helpline/presentation/viewmodels"
	"github.com/gaunghar/admin-console/modules/helpline/services"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/htmx"
	"github.com/gaunghar/admin-console/pkg/intl"
	"github.com/gaunghar/admin-console/pkg/middleware"
	"github.com/gaunghar/admin-console/pkg/shared"
	"github.com/gaunghar/admin-console/pkg/views"
)

const (
	flashSuccess = "success"
	flashError   = "error"
)

type HelplineController struct {
	app      application.Application
	service  *services.HelplineService
	basePath string
}

func NewHelplineController(app application.Application) application.Controller {
	return &HelplineController{
		app:      app,
		service:  app.Service(services.HelplineService{}).(*services.HelplineService),
		basePath: "/helpline",
	}
}

func (c *HelplineController) Key() string {
	return c.basePath
}

func (c *HelplineController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(
		middleware.RedirectNotAuthenticated(),
		middleware.NavItems(c.app),
		middleware.WithPageContext(),
	)
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/new", c.New).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPost)
	router.HandleFunc("/{id}/edit", c.Edit).Methods(http.MethodGet)
	router.HandleFunc("/{id}/toggle", c.Toggle).Methods(http.MethodPost)
	router.HandleFunc("/{id}/delete", c.Delete).Methods(http.MethodPost)
}

func (c *HelplineController) flash(w http.ResponseWriter, r *http.Request) views.Notice {
	success, _ := composables.UseFlash(w, r, flashSuccess)
	failure, _ := composables.UseFlash(w, r, flashError)
	return views.Notice{Success: string(success), Error: string(failure)}
}

func (c *HelplineController) redirect(w http.ResponseWriter, r *http.Request, name, msg string) {
	shared.SetFlash(w, name, []byte(msg))
	htmx.Redirect(w, r, c.basePath)
}

func (c *HelplineController) List(w http.ResponseWriter, r *http.Request) {
	props := &viewmodels.HelplineListPageProps{Notice: c.flash(w, r)}
	entries, err := c.service.List(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to list helplines")
		props.Error = backend.UserMessage(err, intl.T(r.Context(), "Helpline.Errors.LoadFailed"))
	}
	props.Rows = make([]*viewmodels.HelplineRow, 0, len(entries))
	for _, h := range entries {
		props.Rows = append(props.Rows, mappers.HelplineToRow(h))
	}
	templ.Handler(helplinetemplates.Index(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *HelplineController) renderForm(w http.ResponseWriter, r *http.Request, props *viewmodels.HelplineFormPageProps, status int) {
	component := helplinetemplates.Edit(props)
	if props.IsNew {
		component = helplinetemplates.New(props)
	}
	templ.Handler(component, templ.WithStatus(status)).ServeHTTP(w, r)
}

func (c *HelplineController) New(w http.ResponseWriter, r *http.Request) {
	c.renderForm(w, r, &viewmodels.HelplineFormPageProps{
		Form:     &viewmodels.HelplineForm{IsActive: string(helpline.StatusActive)},
		Errors:   map[string]string{},
		IsNew:    true,
		PostTo:   c.basePath,
		CancelTo: c.basePath,
	}, http.StatusOK)
}

func (c *HelplineController) Edit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	entry, err := c.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, helpline.ErrNotFound) {
			c.redirect(w, r, flashError, intl.T(r.Context(), "Helpline.Errors.NotFound"))
			return
		}
		c.redirect(w, r, flashError, backend.UserMessage(err, intl.T(r.Context(), "Helpline.Errors.LoadFailed")))
		return
	}
	c.renderForm(w, r, &viewmodels.HelplineFormPageProps{
		Form:     mappers.HelplineToForm(entry),
		Errors:   map[string]string{},
		PostTo:   c.basePath + "/" + id,
		CancelTo: c.basePath,
	}, http.StatusOK)
}

func (c *HelplineController) Create(w http.ResponseWriter, r *http.Request) {
	c.save(w, r, "")
}

func (c *HelplineController) Update(w http.ResponseWriter, r *http.Request) {
	c.save(w, r, mux.Vars(r)["id"])
}

func (c *HelplineController) save(w http.ResponseWriter, r *http.Request, id string) {
	dto, err := composables.UseForm(&dtos.HelplineDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	creating := id == ""
	props := &viewmodels.HelplineFormPageProps{
		IsNew:    creating,
		PostTo:   c.basePath,
		CancelTo: c.basePath,
	}
	if !creating {
		props.PostTo = c.basePath + "/" + id
	}

	errorsMap, ok := dto.Ok(r.Context())
	if !ok {
		props.Form = mappers.DTOToForm(dto)
		props.Errors = errorsMap
		c.renderForm(w, r, props, http.StatusUnprocessableEntity)
		return
	}

	entity := dto.ToEntity(id)
	if creating {
		err = c.service.Create(r.Context(), entity)
	} else {
		err = c.service.Update(r.Context(), entity)
	}
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to save helpline")
		props.Form = mappers.DTOToForm(dto)
		props.Errors = map[string]string{}
		props.Error = backend.UserMessage(err, intl.T(r.Context(), "Helpline.Errors.SaveFailed"))
		c.renderForm(w, r, props, http.StatusOK)
		return
	}
	msg := intl.T(r.Context(), "Helpline.Flash.Updated")
	if creating {
		msg = intl.T(r.Context(), "Helpline.Flash.Created")
	}
	c.redirect(w, r, flashSuccess, msg)
}

func (c *HelplineController) Toggle(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Toggle(r.Context(), mux.Vars(r)["id"]); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to toggle helpline")
		c.redirect(w, r, flashError, backend.UserMessage(err, intl.T(r.Context(), "Helpline.Errors.StatusFailed")))
		return
	}
	c.redirect(w, r, flashSuccess, intl.T(r.Context(), "Helpline.Flash.Toggled"))
}

func (c *HelplineController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Remove(r.Context(), mux.Vars(r)["id"]); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to delete helpline")
		c.redirect(w, r, flashError, backend.UserMessage(err, intl.T(r.Context(), "Helpline.Errors.DeleteFailed")))
		return
	}
	c.redirect(w, r, flashSuccess, intl.T(r.Context(), "Helpline.Flash.Deleted"))
}
