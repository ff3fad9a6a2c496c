package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gaunghar/admin-console/modules/tole/domain/entities/location"
	"github.com/gaunghar/admin-console/modules/tole/services"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/httpapi"
	"github.com/gaunghar/admin-console/pkg/middleware"
)

type optionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LocationAPIController serves the cascade lists as JSON.
type LocationAPIController struct {
	app       application.Application
	locations *services.LocationService
	basePath  string
	origins   []string
}

func NewLocationAPIController(app application.Application, origins []string) application.Controller {
	return &LocationAPIController{
		app:       app,
		locations: app.Service(services.LocationService{}).(*services.LocationService),
		basePath:  "/tole/locations",
		origins:   origins,
	}
}

func (c *LocationAPIController) Key() string {
	return c.basePath
}

// Register binds exact paths rather than a prefix subrouter so the sibling
// /tole/locations/fields route keeps its own middleware.
func (c *LocationAPIController) Register(r *mux.Router) {
	cors := middleware.Cors(c.origins...)
	auth := middleware.RedirectNotAuthenticated()
	handle := func(name string, h http.HandlerFunc) {
		r.Handle(c.basePath+"/"+name, cors(auth(h))).Methods(http.MethodGet, http.MethodOptions)
	}
	handle("provinces", c.Provinces)
	handle("districts", c.Districts)
	handle("municipalities", c.Municipalities)
}

func (c *LocationAPIController) write(w http.ResponseWriter, r *http.Request, opts []location.Option, err error) {
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("location lookup failed")
		status := http.StatusBadGateway
		if backend.IsTransport(err) {
			status = http.StatusServiceUnavailable
		}
		_ = httpapi.WriteError(w, status, "LOCATION_LOOKUP_FAILED", backend.UserMessage(err, "Failed to load locations"), nil)
		return
	}
	out := make([]optionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, optionResponse{ID: o.ID, Name: o.Name})
	}
	_ = httpapi.WriteData(w, out)
}

func (c *LocationAPIController) Provinces(w http.ResponseWriter, r *http.Request) {
	opts, err := c.locations.Provinces(r.Context())
	c.write(w, r, opts, err)
}

func (c *LocationAPIController) Districts(w http.ResponseWriter, r *http.Request) {
	opts, err := c.locations.Districts(r.Context(), r.URL.Query().Get("province"))
	c.write(w, r, opts, err)
}

func (c *LocationAPIController) Municipalities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, err := c.locations.Municipalities(r.Context(), q.Get("province"), q.Get("district"))
	c.write(w, r, opts, err)
}
