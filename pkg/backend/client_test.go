package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingOp struct {
	ToleID string `json:"ToleID"`
	UserID string `json:"UserID"`
}

func (pingOp) Endpoint() string { return "/api/admin/ping" }
func (pingOp) Flag() Flag       { return "s" }

type pingResponse struct {
	Status
	Rows []struct {
		ID   Text `json:"id"`
		Name Text `json:"name"`
	} `json:"PingLst"`
}

func newServer(t *testing.T, handler func(body map[string]any) (int, any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body := map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		status, payload := handler(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Do_InjectsFlagAndDecodes(t *testing.T) {
	var seen map[string]any
	srv := newServer(t, func(body map[string]any) (int, any) {
		seen = body
		return http.StatusOK, map[string]any{
			"StatusCode": 200,
			"Message":    "Success",
			"PingLst": []map[string]any{
				{"id": 7, "name": "Shanti Tole"},
			},
		}
	})
	c := NewClient(Options{BaseURL: srv.URL})

	var resp pingResponse
	require.NoError(t, c.Do(context.Background(), pingOp{ToleID: "T1", UserID: "U1"}, &resp))

	assert.Equal(t, "s", seen["Flag"])
	assert.Equal(t, "T1", seen["ToleID"])
	assert.Equal(t, "U1", seen["UserID"])
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "7", resp.Rows[0].ID.String())
	assert.Equal(t, 7, resp.Rows[0].ID.Int())
	assert.Equal(t, "Shanti Tole", resp.Rows[0].Name.String())
}

func TestClient_Do_NonOKStatusIsAPIError(t *testing.T) {
	srv := newServer(t, func(map[string]any) (int, any) {
		return http.StatusOK, map[string]any{"StatusCode": "400", "Message": "Tole already exists"}
	})
	c := NewClient(Options{BaseURL: srv.URL})

	err := c.Do(context.Background(), pingOp{}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)
	assert.Equal(t, "Tole already exists", UserMessage(err, "Failed to save tole"))
	assert.False(t, IsTransport(err))
}

func TestClient_Do_EmptyMessageFallsBack(t *testing.T) {
	srv := newServer(t, func(map[string]any) (int, any) {
		return http.StatusOK, map[string]any{"StatusCode": 500}
	})
	c := NewClient(Options{BaseURL: srv.URL})

	err := c.Do(context.Background(), pingOp{}, nil)
	assert.Equal(t, "Failed to save tole", UserMessage(err, "Failed to save tole"))
}

func TestClient_Do_HTTPErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Options{BaseURL: srv.URL})

	err := c.Do(context.Background(), pingOp{}, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Code)
}

func TestClient_Do_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()
	c := NewClient(Options{BaseURL: url})

	err := c.Do(context.Background(), pingOp{}, nil)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsTransport(err))
	assert.Equal(t, MessageUnavailable, UserMessage(err, "fallback"))
}

func TestClient_Do_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})
	c := NewClient(Options{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	err := c.Do(context.Background(), pingOp{}, nil)
	require.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, MessageTimeout, UserMessage(err, "fallback"))
}

func TestText_UnmarshalJSON(t *testing.T) {
	var row struct {
		A Text `json:"a"`
		B Text `json:"b"`
		C Text `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"x","b":12.5,"c":null}`), &row))
	assert.Equal(t, "x", row.A.String())
	assert.Equal(t, "12.5", row.B.String())
	assert.Equal(t, "", row.C.String())
}

func TestText_Time(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		in   Text
		want time.Time
	}{
		{"2026-03-01", day},
		{"2026-03-01T00:00:00", day},
		{"2026-03-01 00:00:00", day},
		{"2026/03/01", day},
		{"2026-03-01T00:00:00.000+00:00", day},
		{"", time.Time{}},
		{"soon", time.Time{}},
	}
	for _, tt := range tests {
		assert.True(t, tt.want.Equal(tt.in.Time()), string(tt.in))
	}
}
