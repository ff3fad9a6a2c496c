package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/intl"
)

// NavItems puts the translated sidebar links into the request context.
func NavItems(app application.Application) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			localizer, _ := intl.UseLocalizer(r.Context())
			ctx := composables.WithNavItems(r.Context(), app.NavItems(localizer))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
