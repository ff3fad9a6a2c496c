package htmx

import "net/http"

// IsHxRequest reports whether the request was issued by htmx.
func IsHxRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func Target(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

// Redirect makes htmx perform a full navigation; plain requests get a 302.
func Redirect(w http.ResponseWriter, r *http.Request, to string) {
	if IsHxRequest(r) {
		w.Header().Set("HX-Redirect", to)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, to, http.StatusFound)
}
