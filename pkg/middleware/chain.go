package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Chain wraps h so that mws run in the order given.
func Chain(h http.Handler, mws ...mux.MiddlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
