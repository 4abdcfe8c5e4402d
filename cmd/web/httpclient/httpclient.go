package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"fanvue-front/cmd/internal/logger"
	"fanvue-front/cmd/web/metrics"
	"fanvue-front/cmd/web/trace"
)

// DefaultTimeout 은 Config.Timeout 이 0 일 때 아웃바운드 요청 하나에 적용되는 상한이다.
const DefaultTimeout = 10 * time.Second

// Config는 HTTP 클라이언트 공통 설정을 캡슐화한다.
type Config struct {
	Timeout   time.Duration
	Transport http.RoundTripper
}

// loggingRoundTripper는 모든 아웃바운드 HTTP 호출에 대해 공통 로깅, 메트릭과
// X-Request-Id 헤더 트레이싱을 수행한다.
type loggingRoundTripper struct {
	inner http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	// 호출자가 span 을 미리 붙였으면(피드 댓글 조회 등) 그 번호를 그대로 쓴다.
	ctx := req.Context()
	span, ok := trace.SpanFromContext(ctx)
	if !ok {
		ctx, span = trace.NewSpan(ctx)
	}

	// RoundTripper 는 원본 요청을 수정하면 안 되므로 헤더를 복제한다.
	req = req.Clone(ctx)
	req.Header.Set("X-Request-Id", span.RequestID)
	req.Header.Set("X-Span-Id", span.String())

	resp, err := l.inner.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		metrics.ObserveUpstream(req.Method, req.URL.Path, 0, duration)
		logger.ErrorWithFields("httpclient request failed", span.Fields(logger.Fields{
			"method":   req.Method,
			"url":      req.URL.String(),
			"duration": duration.String(),
			"error":    err.Error(),
		}))
		return nil, err
	}

	metrics.ObserveUpstream(req.Method, req.URL.Path, resp.StatusCode, duration)
	logger.DebugWithFields("httpclient request success", span.Fields(logger.Fields{
		"method":   req.Method,
		"url":      req.URL.String(),
		"status":   resp.StatusCode,
		"duration": duration.String(),
	}))
	return resp, nil
}

// BaseClient는 공통 HTTP 클라이언트와 baseURL을 묶어두고,
// URL 생성 및 요청 생성을 도와준다.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewBaseClient는 주어진 baseURL과 기본 설정의 http.Client(logging 포함)를 사용해 BaseClient를 생성한다.
func NewBaseClient(baseURL string) *BaseClient {
	return &BaseClient{
		HTTPClient: NewDefault(),
		BaseURL:    baseURL,
	}
}

// NewBaseClientWithClient는 이미 생성된 http.Client를 사용하는 BaseClient를 생성한다.
// httpClient가 nil이면 기본 클라이언트를 사용한다.
func NewBaseClientWithClient(httpClient *http.Client, baseURL string) *BaseClient {
	if httpClient == nil {
		httpClient = NewDefault()
	}
	return &BaseClient{
		HTTPClient: httpClient,
		BaseURL:    baseURL,
	}
}

// NewRequest는 baseURL과 상대 경로, 쿼리, 바디를 사용해 새로운 HTTP 요청을 생성한다.
// relPath에 쿼리(?)가 포함된 경우 path.Join이 쿼리를 손상시키므로 에러를 반환한다.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain query string (use query parameter instead): %s", relPath)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("httpclient: parse base url: %w", err)
	}
	if relPath != "" {
		base.Path = path.Join(base.Path, relPath)
	}
	if query != nil {
		base.RawQuery = query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, base.String(), body)
}

// Do는 내부 HTTP 클라이언트를 사용해 요청을 실행한다.
func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}

// New는 주어진 설정으로 http.Client를 생성한다.
// Timeout이 0이면 DefaultTimeout 을 사용한다.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: transport},
	}
}

// NewDefault는 공통 기본 설정(Timeout 10초)을 사용하는 http.Client를 생성한다.
func NewDefault() *http.Client {
	return New(Config{})
}
