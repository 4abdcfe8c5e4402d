package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"fanvue-front/cmd/internal/logger"
	"fanvue-front/cmd/web/trace"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
)

// RequestTrace는 모든 inbound HTTP 요청에 대해 Request ID와 Span ID를 보장하고,
// 이를 컨텍스트/헤더에 저장한 뒤 요청 완료 로그에 포함시킨다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		// inbound 요청은 span 0 이고, upstream 호출은 1,2,3,... 을 받는다.
		ctxWithTrace := trace.Start(req.Context(), requestID)
		c.Request = req.WithContext(ctxWithTrace)

		inbound, _ := trace.SpanFromContext(ctxWithTrace)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, inbound.String())

		queryParams := map[string][]string{}
		for key, values := range req.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values
			}
		}

		c.Next()

		logger.InfoWithFields("completed request", inbound.Fields(logger.Fields{
			"method":         req.Method,
			"path":           req.URL.Path,
			"query_params":   queryParams,
			"status":         c.Writer.Status(),
			"duration":       time.Since(start).String(),
			"upstream_calls": trace.Issued(ctxWithTrace),
		}))
	}
}
