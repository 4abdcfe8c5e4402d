package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanvue-front/cmd/web/trace"
)

func TestNewRequestJoinsPathAndQuery(t *testing.T) {
	c := NewBaseClient("https://api.example.com/v1")

	req, err := c.NewRequest(context.Background(), http.MethodGet, "/posts", url.Values{"_limit": {"10"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1/posts?_limit=10", req.URL.String())
}

func TestNewRequestRejectsQueryInPath(t *testing.T) {
	c := NewBaseClient("https://api.example.com")

	_, err := c.NewRequest(context.Background(), http.MethodGet, "/comments?postId=1", nil, nil)
	assert.Error(t, err)
}

func TestRoundTripperPropagatesTraceHeaders(t *testing.T) {
	var gotRequestID, gotSpanID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		gotSpanID = r.Header.Get("X-Span-Id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL)
	ctx := trace.Start(context.Background(), "req-42")
	req, err := c.NewRequest(ctx, http.MethodGet, "/posts", nil, nil)
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "req-42", gotRequestID)
	assert.Equal(t, "1", gotSpanID)
	assert.Empty(t, req.Header.Get("X-Request-Id"), "caller request must not be mutated")
}

func TestRoundTripperReusesCallerSpan(t *testing.T) {
	var (
		mu         sync.Mutex
		gotSpanIDs []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotSpanIDs = append(gotSpanIDs, r.Header.Get("X-Span-Id"))
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL)
	ctx := trace.Start(context.Background(), "req-43")
	_, _ = trace.NewSpan(ctx)
	spanCtx, span := trace.NewSpan(ctx)

	for _, reqCtx := range []context.Context{spanCtx, ctx} {
		req, err := c.NewRequest(reqCtx, http.MethodGet, "/comments", nil, nil)
		require.NoError(t, err)
		resp, err := c.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
	}

	// 미리 붙은 span 은 새 번호를 발급하지 않고, span 이 없는 호출만 3 번을 받는다.
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{span.String(), "3"}, gotSpanIDs)
	assert.Equal(t, int64(3), trace.Issued(ctx))
}

func TestClientTimeoutBoundsSlowUpstream(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewBaseClientWithClient(New(Config{Timeout: 50 * time.Millisecond}), srv.URL)
	req, err := c.NewRequest(context.Background(), http.MethodGet, "/photos", nil, nil)
	require.NoError(t, err)

	_, err = c.Do(req)
	assert.Error(t, err)
}
