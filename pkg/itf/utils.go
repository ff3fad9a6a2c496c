package itf

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/gaunghar/admin-console/pkg/composables"
)

// Request is a request builder bound to an environment.
type Request struct {
	env       *TestEnvironment
	req       *http.Request
	anonymous bool
}

func (te *TestEnvironment) newRequest(method, target string, body io.Reader) *Request {
	return &Request{env: te, req: httptest.NewRequest(method, target, body)}
}

func (te *TestEnvironment) GET(target string) *Request {
	return te.newRequest(http.MethodGet, target, nil)
}

// POST sends values url-encoded.
func (te *TestEnvironment) POST(target string, values url.Values) *Request {
	r := te.newRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// File is one part of a multipart upload.
type File struct {
	Field    string
	Name     string
	Content  []byte
	MimeType string
}

// Multipart sends values and files as multipart/form-data.
func (te *TestEnvironment) Multipart(tb testing.TB, target string, values url.Values, files ...File) *Request {
	tb.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, vs := range values {
		for _, v := range vs {
			require.NoError(tb, mw.WriteField(k, v))
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Name)
		require.NoError(tb, err)
		_, err = part.Write(f.Content)
		require.NoError(tb, err)
	}
	require.NoError(tb, mw.Close())
	r := te.newRequest(http.MethodPost, target, body)
	r.req.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

// Anonymous drops the session cookie.
func (r *Request) Anonymous() *Request {
	r.anonymous = true
	return r
}

func (r *Request) Header(key, value string) *Request {
	r.req.Header.Set(key, value)
	return r
}

func (r *Request) HTMX() *Request {
	return r.Header("HX-Request", "true")
}

func (r *Request) Cookie(c *http.Cookie) *Request {
	r.req.AddCookie(c)
	return r
}

// Do runs the request through the router.
func (r *Request) Do() *Response {
	if !r.anonymous {
		r.req.AddCookie(&http.Cookie{Name: CookieKey, Value: r.env.Session.ID})
	}
	rec := httptest.NewRecorder()
	r.env.Router.ServeHTTP(rec, r.req)
	return &Response{Recorder: rec}
}

type Response struct {
	Recorder *httptest.ResponseRecorder
}

func (r *Response) Code() int {
	return r.Recorder.Code
}

func (r *Response) Body() string {
	return r.Recorder.Body.String()
}

func (r *Response) Header() http.Header {
	return r.Recorder.Header()
}

// Location is the redirect target, whether sent as a 302 or as HX-Redirect.
func (r *Response) Location() string {
	if loc := r.Recorder.Header().Get("Location"); loc != "" {
		return loc
	}
	return r.Recorder.Header().Get("HX-Redirect")
}

// Cookie returns the cookie the response set under name, or nil.
func (r *Response) Cookie(name string) *http.Cookie {
	for _, c := range r.Recorder.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Flash decodes the flash message the response set under name.
func (r *Response) Flash(tb testing.TB, name string) string {
	tb.Helper()
	c := r.Cookie(name)
	if c == nil {
		return ""
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	v, err := composables.UseFlash(httptest.NewRecorder(), req, name)
	require.NoError(tb, err)
	return string(v)
}

// Doc parses the body as HTML.
func (r *Response) Doc(tb testing.TB) *goquery.Document {
	tb.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(r.Body()))
	require.NoError(tb, err)
	return doc
}
