package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("not a url", time.Second)
	assert.Error(t, err)
}

func TestGetJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		switch r.URL.Path {
		case "/health":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		default:
			http.Error(w, "down", http.StatusServiceUnavailable)
		}
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)

	var out struct {
		Status string `json:"status"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "health", &out))
	assert.Equal(t, "ok", out.Status)

	err = c.GetJSON(context.Background(), "/other", nil)
	var herr *HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, http.StatusServiceUnavailable, herr.StatusCode)
	assert.Equal(t, "down", herr.Body)
	assert.Equal(t, "http error: status=503 body=down", herr.Error())
}

func TestGetJSON_NilClient(t *testing.T) {
	var c *Client
	assert.Error(t, c.GetJSON(context.Background(), "/health", nil))
}
