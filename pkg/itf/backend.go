package itf

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Call is one request the fake backend received.
type Call struct {
	Endpoint string
	Flag     string
	Body     map[string]any
}

// Str returns a body field as a string, or "" when it is absent or not a string.
func (c Call) Str(key string) string {
	s, _ := c.Body[key].(string)
	return s
}

// Handler answers one backend call with an HTTP status and a JSON payload.
type Handler func(body map[string]any) (int, any)

// FakeBackend stands in for the remote REST backend. Calls without a
// registered handler are answered with StatusCode 400.
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	handlers map[string]Handler
	calls    []Call
}

func handlerKey(endpoint, flag string) string {
	return endpoint + "|" + flag
}

func NewFakeBackend(tb testing.TB) *FakeBackend {
	tb.Helper()
	f := &FakeBackend{handlers: map[string]Handler{}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	tb.Cleanup(f.Server.Close)
	return f
}

func (f *FakeBackend) URL() string {
	return f.Server.URL
}

func (f *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	flag, _ := body["Flag"].(string)
	call := Call{Endpoint: r.URL.Path, Flag: flag, Body: body}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	h, ok := f.handlers[handlerKey(call.Endpoint, flag)]
	f.mu.Unlock()

	status, payload := http.StatusOK, any(map[string]any{"StatusCode": 400, "Message": "unexpected call"})
	if ok {
		status, payload = h(body)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// On registers h for calls to endpoint carrying flag. Use "" for endpoints without flags.
func (f *FakeBackend) On(endpoint, flag string, h Handler) *FakeBackend {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[handlerKey(endpoint, flag)] = h
	return f
}

// Reply answers endpoint+flag with a 200 envelope merged with fields.
func (f *FakeBackend) Reply(endpoint, flag string, fields map[string]any) *FakeBackend {
	return f.On(endpoint, flag, func(map[string]any) (int, any) {
		return http.StatusOK, OK(fields)
	})
}

// Fail answers endpoint+flag with a non-200 StatusCode and message.
func (f *FakeBackend) Fail(endpoint, flag string, code int, message string) *FakeBackend {
	return f.On(endpoint, flag, func(map[string]any) (int, any) {
		return http.StatusOK, map[string]any{"StatusCode": code, "Message": message}
	})
}

// Calls lists the received calls to endpoint with flag, in arrival order.
func (f *FakeBackend) Calls(endpoint, flag string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.calls {
		if c.Endpoint == endpoint && c.Flag == flag {
			out = append(out, c)
		}
	}
	return out
}

// AllCalls lists every received call.
func (f *FakeBackend) AllCalls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// OK builds a success envelope carrying fields.
func OK(fields map[string]any) map[string]any {
	out := map[string]any{"StatusCode": 200, "Message": "Success"}
	for k, v := range fields {
		out[k] = v
	}
	return out
}
