package controllers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/gaunghar/admin-console/modules/slider/domain/aggregates/slider"
	"github.com/gaunghar/admin-console/modules/slider/presentation/controllers/dtos"
	"github.com/gaunghar/admin-console/modules/slider/presentation/mappers"
	slidertemplates "github.com/gaunghar/admin-console/modules/slider/presentation/templates/pages/slider"
	"github.com/gaunghar/admin-console/modules/slider/presentation/viewmodels"
	"github.com/gaunghar/admin-console/modules/slider/services"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/htmx"
	"github.com/gaunghar/admin-console/pkg/intl"
	"github.com/gaunghar/admin-console/pkg/middleware"
	"github.com/gaunghar/admin-console/pkg/shared"
	"github.com/gaunghar/admin-console/pkg/upload"
	"github.com/gaunghar/admin-console/pkg/views"
)

const (
	flashSuccess = "success"
	flashError   = "error"
)

type SliderControllerOptions struct {
	MaxImageSize int64
	// ImageBaseURL prefixes stored image file names for display.
	ImageBaseURL string
}

type SliderController struct {
	app      application.Application
	service  *services.SliderService
	basePath string
	opts     SliderControllerOptions
}

func NewSliderController(app application.Application, opts SliderControllerOptions) application.Controller {
	if opts.MaxImageSize <= 0 {
		opts.MaxImageSize = 2 << 20
	}
	return &SliderController{
		app:      app,
		service:  app.Service(services.SliderService{}).(*services.SliderService),
		basePath: "/slider",
		opts:     opts,
	}
}

func (c *SliderController) Key() string {
	return c.basePath
}

func (c *SliderController) Register(r *mux.Router) {
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
	router.HandleFunc("/{id}/move", c.Move).Methods(http.MethodPost)
	router.HandleFunc("/{id}/delete", c.Delete).Methods(http.MethodPost)
}

func (c *SliderController) flash(w http.ResponseWriter, r *http.Request) views.Notice {
	success, _ := composables.UseFlash(w, r, flashSuccess)
	failure, _ := composables.UseFlash(w, r, flashError)
	return views.Notice{Success: string(success), Error: string(failure)}
}

func (c *SliderController) redirect(w http.ResponseWriter, r *http.Request, name, msg string) {
	shared.SetFlash(w, name, []byte(msg))
	htmx.Redirect(w, r, c.basePath)
}

func (c *SliderController) List(w http.ResponseWriter, r *http.Request) {
	props := &viewmodels.SliderListPageProps{Notice: c.flash(w, r), ImageBase: c.opts.ImageBaseURL}
	list, err := c.service.List(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to list sliders")
		props.Error = backend.UserMessage(err, intl.T(r.Context(), "Slider.Errors.LoadFailed"))
	}
	props.Rows = mappers.SlidersToRows(list)
	templ.Handler(slidertemplates.Index(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *SliderController) renderForm(w http.ResponseWriter, r *http.Request, props *viewmodels.SliderFormPageProps, status int) {
	props.ImageBase = c.opts.ImageBaseURL
	component := slidertemplates.Edit(props)
	if props.IsNew {
		component = slidertemplates.New(props)
	}
	templ.Handler(component, templ.WithStatus(status)).ServeHTTP(w, r)
}

func (c *SliderController) New(w http.ResponseWriter, r *http.Request) {
	c.renderForm(w, r, &viewmodels.SliderFormPageProps{
		Form:     &viewmodels.SliderForm{IsActive: string(slider.StatusActive)},
		Errors:   map[string]string{},
		IsNew:    true,
		PostTo:   c.basePath,
		CancelTo: c.basePath,
	}, http.StatusOK)
}

func (c *SliderController) Edit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	entry, err := c.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, slider.ErrNotFound) {
			c.redirect(w, r, flashError, intl.T(r.Context(), "Slider.Errors.NotFound"))
			return
		}
		c.redirect(w, r, flashError, backend.UserMessage(err, intl.T(r.Context(), "Slider.Errors.LoadFailed")))
		return
	}
	c.renderForm(w, r, &viewmodels.SliderFormPageProps{
		Form:     mappers.SliderToForm(entry),
		Errors:   map[string]string{},
		PostTo:   c.basePath + "/" + id,
		CancelTo: c.basePath,
	}, http.StatusOK)
}

func (c *SliderController) readImage(r *http.Request) (string, string) {
	img, err := upload.FromRequest(r, "Image", c.opts.MaxImageSize)
	switch {
	case err == nil && img == nil:
		return "", ""
	case err == nil:
		return img.Encoded, ""
	case errors.Is(err, upload.ErrTooLarge):
		return "", intl.T(r.Context(), "Slider.Errors.ImageTooLarge")
	case errors.Is(err, upload.ErrNotImage):
		return "", intl.T(r.Context(), "Slider.Errors.ImageInvalid")
	default:
		return "", err.Error()
	}
}

func (c *SliderController) Create(w http.ResponseWriter, r *http.Request) {
	c.save(w, r, "")
}

func (c *SliderController) Update(w http.ResponseWriter, r *http.Request) {
	c.save(w, r, mux.Vars(r)["id"])
}

func (c *SliderController) save(w http.ResponseWriter, r *http.Request, id string) {
	dto, err := composables.UseForm(&dtos.SliderDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	creating := id == ""
	props := &viewmodels.SliderFormPageProps{
		IsNew:    creating,
		PostTo:   c.basePath,
		CancelTo: c.basePath,
	}
	if !creating {
		props.PostTo = c.basePath + "/" + id
	}

	errorsMap, ok := dto.Ok(r.Context())
	image, imageErr := c.readImage(r)
	if imageErr == "" && creating && image == "" {
		imageErr = intl.T(r.Context(), "Slider.Errors.ImageRequired")
	}
	if imageErr != "" {
		errorsMap["Image"] = imageErr
		ok = false
	}
	props.Errors = errorsMap
	props.Form = mappers.DTOToForm(dto, image)
	if !ok {
		c.renderForm(w, r, props, http.StatusUnprocessableEntity)
		return
	}

	entity := dto.ToEntity(id, image)
	if creating {
		err = c.service.Create(r.Context(), entity)
	} else {
		err = c.service.Update(r.Context(), entity)
	}
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to save slider")
		props.Error = backend.UserMessage(err, intl.T(r.Context(), "Slider.Errors.SaveFailed"))
		c.renderForm(w, r, props, http.StatusOK)
		return
	}
	msg := intl.T(r.Context(), "Slider.Flash.Updated")
	if creating {
		msg = intl.T(r.Context(), "Slider.Flash.Created")
	}
	c.redirect(w, r, flashSuccess, msg)
}

func (c *SliderController) Toggle(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Toggle(r.Context(), mux.Vars(r)["id"]); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to toggle slider")
		c.redirect(w, r, flashError, backend.UserMessage(err, intl.T(r.Context(), "Slider.Errors.StatusFailed")))
		return
	}
	c.redirect(w, r, flashSuccess, intl.T(r.Context(), "Slider.Flash.Toggled"))
}

func (c *SliderController) Move(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.MoveDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dir, err := dto.Value()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	moved, err := c.service.Move(r.Context(), mux.Vars(r)["id"], dir)
	switch {
	case errors.Is(err, slider.ErrPartialReorder):
		c.redirect(w, r, flashError, intl.T(r.Context(), "Slider.Errors.PartialReorder"))
	case errors.Is(err, slider.ErrNotFound):
		c.redirect(w, r, flashError, intl.T(r.Context(), "Slider.Errors.NotFound"))
	case err != nil:
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to move slider")
		c.redirect(w, r, flashError, backend.UserMessage(err, intl.T(r.Context(), "Slider.Errors.MoveFailed")))
	case !moved:
		htmx.Redirect(w, r, c.basePath)
	default:
		c.redirect(w, r, flashSuccess, intl.T(r.Context(), "Slider.Flash.Moved"))
	}
}

func (c *SliderController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Remove(r.Context(), mux.Vars(r)["id"]); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to delete slider")
		c.redirect(w, r, flashError, backend.UserMessage(err, intl.T(r.Context(), "Slider.Errors.DeleteFailed")))
		return
	}
	c.redirect(w, r, flashSuccess, intl.T(r.Context(), "Slider.Flash.Deleted"))
}
