package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	kerrors "github.com/elphtools/kmesh/pkg/errors"
)

func TestRequestIDGenerated(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/presets")
	require.NoError(t, err)
	defer resp.Body.Close()

	requestID := resp.Header.Get("X-Request-Id")
	require.NotEmpty(t, requestID)
	_, err = uuid.Parse(requestID)
	assert.NoError(t, err, "generated request ID should be a valid UUID")
}

func TestRequestIDPropagated(t *testing.T) {
	_, ts := newTestServer(t)

	clientID := uuid.New().String()
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/v1/presets", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", clientID)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, clientID, resp.Header.Get("X-Request-Id"))
}

func TestRequestIDInvalidReplaced(t *testing.T) {
	_, ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/v1/presets", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "not-a-uuid")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	requestID := resp.Header.Get("X-Request-Id")
	assert.NotEqual(t, "not-a-uuid", requestID)
	_, err = uuid.Parse(requestID)
	assert.NoError(t, err)
}

func TestAPIVersionNegotiation(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{name: "no accept header", accept: "", want: "v1"},
		{name: "plain json", accept: "application/json", want: "v1"},
		{name: "vendor v1", accept: "application/vnd.kmesh.v1+json", want: "v1"},
		{name: "unknown version falls back", accept: "application/vnd.kmesh.v9+json", want: "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, ts.URL+"/v1/presets", nil)
			require.NoError(t, err)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.want, resp.Header.Get("X-API-Version"))
		})
	}
}

func TestRateLimitHeaders(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/presets")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Reset"))
}

func TestRateLimitExceeded(t *testing.T) {
	cfg := NewConfig()
	cfg.Name = "kmeshd-test"
	cfg.Version = "test"
	// One token, refilled far too slowly to matter during the test.
	cfg.RateLimit = rate.Limit(0.001)
	cfg.RateLimitBurst = 1
	s := New(cfg)
	s.SetReady(true)

	ts := httptest.NewServer(s.setupRoutes())
	t.Cleanup(ts.Close)
	t.Cleanup(http.DefaultClient.CloseIdleConnections)

	resp, err := http.Get(ts.URL + "/v1/presets")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/v1/presets")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, string(kerrors.ErrCodeRateLimitExceeded), errResp.Code)
	assert.True(t, errResp.Retryable)
}

func TestPanicRecovery(t *testing.T) {
	s, _ := newTestServer(t)

	handler := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/mesh", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, string(kerrors.ErrCodeInternal), errResp.Code)
	assert.True(t, errResp.Retryable)
}
