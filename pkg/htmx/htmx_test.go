package htmx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirect(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/tole", nil)
	rec := httptest.NewRecorder()
	Redirect(rec, r, "/tole")
	assert.Equal(t, http.StatusFound, rec.Code)

	r.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	Redirect(rec, r, "/tole")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/tole", rec.Header().Get("HX-Redirect"))
}
