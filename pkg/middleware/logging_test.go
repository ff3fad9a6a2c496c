package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaunghar/admin-console/pkg/composables"
)

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	return logger, buf
}

func TestWithLogger_RedactsPasswords(t *testing.T) {
	logger, buf := newTestLogger()
	r := mux.NewRouter()
	r.Use(WithLogger(logger, DefaultLoggerOptions()))
	r.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secret", r.PostForm.Get("Password"))
		composables.UseLogger(r.Context()).Info("inside handler")
	}).Methods(http.MethodPost)

	form := url.Values{"UserName": {"admin"}, "Password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Request-ID", "req-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", rec.Header().Get("X-Request-Id"))
	out := buf.String()
	assert.Contains(t, out, "inside handler")
	assert.Contains(t, out, `"request-id":"req-1"`)
	assert.Contains(t, out, "[redacted]")
	assert.NotContains(t, out, "secret")
}

func TestWithLogger_RecoversPanics(t *testing.T) {
	logger, buf := newTestLogger()
	r := mux.NewRouter()
	r.Use(WithLogger(logger, DefaultLoggerOptions()))
	r.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_SERVER_ERROR")
	assert.Contains(t, buf.String(), "panic recovered")
}
