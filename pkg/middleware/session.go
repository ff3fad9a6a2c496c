package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"

	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/session"
)

// ClearSessionCookie expires the sid cookie on the client.
func ClearSessionCookie(w http.ResponseWriter, cookieKey string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieKey,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(1, 0),
		HttpOnly: true,
	})
}

// SetSessionCookie hands the session id to the client until the session expires.
func SetSessionCookie(w http.ResponseWriter, cookieKey string, s *session.Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieKey,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ProvideSession resolves the sid cookie against store and binds the session to the request.
// Unknown, expired and undecodable sessions all leave the request unauthenticated;
// a cookie that pointed at one is cleared.
func ProvideSession(store session.Store, cookieKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieKey)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			s, err := store.Get(r.Context(), cookie.Value)
			if err != nil {
				logger := composables.UseLogger(r.Context())
				switch {
				case errors.Is(err, session.ErrNotFound):
					logger.Debug("session not found")
				case errors.Is(err, session.ErrMalformed):
					logger.WithError(err).Warn("discarding malformed session")
					_ = store.Delete(r.Context(), cookie.Value)
				default:
					logger.WithError(err).Error("failed to load session")
				}
				ClearSessionCookie(w, cookieKey)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(composables.WithSession(r.Context(), s)))
		})
	}
}

// RedirectNotAuthenticated sends requests without a session to /login,
// remembering the requested path in ?next.
func RedirectNotAuthenticated() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := composables.UseSession(r.Context()); err != nil {
				target := "/login?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
				if r.Header.Get("HX-Request") == "true" {
					w.Header().Set("HX-Redirect", target)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RedirectAuthenticated keeps signed-in administrators away from the login page.
func RedirectAuthenticated(to string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := composables.UseSession(r.Context()); err == nil {
				http.Redirect(w, r, to, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
