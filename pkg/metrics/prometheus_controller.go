package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gaunghar/admin-console/pkg/application"
)

// PrometheusController exposes the default registry plus any extra gatherers.
type PrometheusController struct {
	path      string
	gatherers prometheus.Gatherers
}

func NewPrometheusController(path string, extra ...prometheus.Gatherer) application.Controller {
	if path == "" {
		path = "/debug/prometheus"
	}
	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer}
	gatherers = append(gatherers, extra...)
	return &PrometheusController{path: path, gatherers: gatherers}
}

func (c *PrometheusController) Key() string {
	return c.path
}

func (c *PrometheusController) Register(r *mux.Router) {
	handler := promhttp.HandlerFor(c.gatherers, promhttp.HandlerOpts{})
	r.Handle(c.path, handler).Methods(http.MethodGet)
}
