package ai

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

func newTestClient(url string) *Client {
	return NewClient(Options{
		APIKey:      "sk-test",
		BaseURL:     url,
		Model:       "test-model",
		MaxTokens:   150,
		Temperature: 0.7,
		Timeout:     2 * time.Second,
	})
}

func TestComplete_Success(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  A visionary leader.  "}}]}`))
	}))
	defer srv.Close()

	out, err := newTestClient(srv.URL).Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "A visionary leader.", out)

	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, 150, got.MaxTokens)
	require.NotNil(t, got.Temperature)
	assert.InDelta(t, 0.7, *got.Temperature, 1e-9)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "hello", got.Messages[0].Content)
}

func TestComplete_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "http status", status: http.StatusBadGateway, body: `oops`, want: "llm http 502"},
		{name: "provider error", status: http.StatusUnauthorized, body: `{"error":{"message":"bad key","type":"auth"}}`, want: "bad key"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, want: "missing choices"},
		{name: "empty content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"  "}}]}`, want: "empty content"},
		{name: "bad json", status: http.StatusOK, body: `{`, want: "parse"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).Complete(context.Background(), "p")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestComplete_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).Complete(context.Background(), "p")
	assert.Error(t, err)
}

func TestComplete_NoAPIKey(t *testing.T) {
	c := NewClient(Options{})
	assert.False(t, c.Configured())
	_, err := c.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestComplete_RateLimitHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Options{APIKey: "k", BaseURL: srv.URL, RatePerSecond: 0.001, Burst: 1})
	_, err := c.Complete(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Complete(ctx, "second")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}
