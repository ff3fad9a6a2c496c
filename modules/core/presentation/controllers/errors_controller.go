package controllers

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/gaunghar/admin-console/modules/core/presentation/templates/pages/errorpages"
	"github.com/gaunghar/admin-console/modules/core/presentation/viewmodels"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/httpapi"
	"github.com/gaunghar/admin-console/pkg/intl"
	"github.com/gaunghar/admin-console/pkg/middleware"
)

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.URL.Path, "/tole/locations/")
}

func requestIDFromResponse(w http.ResponseWriter, r *http.Request) string {
	if requestID := strings.TrimSpace(w.Header().Get("X-Request-Id")); requestID != "" {
		return requestID
	}
	return strings.TrimSpace(r.Header.Get("X-Request-Id"))
}

func handler404(w http.ResponseWriter, r *http.Request) {
	props := &viewmodels.ErrorPageProps{
		Code:    http.StatusNotFound,
		Title:   intl.T(r.Context(), "Errors.NotFound.Title"),
		Message: intl.T(r.Context(), "Errors.NotFound.Message"),
	}
	templ.Handler(errorpages.NotFound(props), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
}

func handler405(w http.ResponseWriter, r *http.Request) {
	props := &viewmodels.ErrorPageProps{
		Code:    http.StatusMethodNotAllowed,
		Title:   intl.T(r.Context(), "Errors.MethodNotAllowed.Title"),
		Message: intl.T(r.Context(), "Errors.MethodNotAllowed.Message"),
	}
	templ.Handler(errorpages.MethodNotAllowed(props), templ.WithStatus(http.StatusMethodNotAllowed)).ServeHTTP(w, r)
}

// NotFound renders the 404 page, or a JSON error for API callers.
func NotFound(app application.Application) http.HandlerFunc {
	page := middleware.Chain(http.HandlerFunc(handler404), middleware.ProvideLocalizer(app), middleware.WithPageContext())
	return func(w http.ResponseWriter, r *http.Request) {
		if wantsJSON(r) {
			meta := map[string]string{"path": r.URL.Path}
			if requestID := requestIDFromResponse(w, r); requestID != "" {
				meta["request_id"] = requestID
			}
			_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "not found", meta)
			return
		}
		page.ServeHTTP(w, r)
	}
}

func MethodNotAllowed(app application.Application) http.HandlerFunc {
	page := middleware.Chain(http.HandlerFunc(handler405), middleware.ProvideLocalizer(app), middleware.WithPageContext())
	return func(w http.ResponseWriter, r *http.Request) {
		if wantsJSON(r) {
			meta := map[string]string{"method": r.Method, "path": r.URL.Path}
			if requestID := requestIDFromResponse(w, r); requestID != "" {
				meta["request_id"] = requestID
			}
			_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", meta)
			return
		}
		page.ServeHTTP(w, r)
	}
}
