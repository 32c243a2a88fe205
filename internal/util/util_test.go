package util

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuman(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{3 << 20, "3.00 MB"},
		{5 << 30, "5.00 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Human(tt.n))
	}
}

func TestOpenInHostBrowserNoEnv(t *testing.T) {
	t.Setenv("BROWSER", "")

	assert.False(t, OpenInHostBrowser("https://postimg.cc/a/Xy12Zz"))
}

func TestDoWithRetryExhausted(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	req, err := http.NewRequest("GET", srv.URL, nil)
	require.NoError(t, err)

	backoff := 40 * time.Millisecond
	start := time.Now()

	resp, err := DoWithRetry(srv.Client(), req, 3, backoff)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500 after 3 attempts")
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	assert.Equal(t, 3, hits)
	// sleeps only between attempts: backoff*1 + backoff*2, never after
	// the last one
	assert.Less(t, elapsed, 5*backoff)
}

func TestDoWithRetrySucceedsFirstTry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	req, err := http.NewRequest("GET", srv.URL, nil)
	require.NoError(t, err)

	start := time.Now()
	resp, err := DoWithRetry(srv.Client(), req, 3, 200*time.Millisecond)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestPickUserAgent(t *testing.T) {
	assert.Equal(t, "custom-ua", PickUserAgent("custom-ua"))
	assert.NotEmpty(t, PickUserAgent(""))
}
