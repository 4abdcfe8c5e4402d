package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"fanvue-front/cmd/internal/logger"
)

// Trace 는 페이지 요청 하나에 대한 추적 상태다.
// span 번호는 요청 안에서 upstream 호출마다 1, 2, 3, ... 으로 발급된다.
// 피드 댓글은 병렬로 조회되므로 카운터는 atomic 으로만 다룬다.
type Trace struct {
	RequestID string
	issued    atomic.Int64
}

// Span 은 upstream 호출 하나다. ID 0 은 inbound 요청 자체를 뜻한다.
type Span struct {
	RequestID string
	ID        int64
}

func (s Span) String() string {
	return strconv.FormatInt(s.ID, 10)
}

// Fields 는 request_id/span_id 를 붙인 로그 필드를 돌려준다. extra 는 수정하지 않는다.
func (s Span) Fields(extra logger.Fields) logger.Fields {
	out := make(logger.Fields, len(extra)+2)
	for k, v := range extra {
		out[k] = v
	}
	out["request_id"] = s.RequestID
	out["span_id"] = s.String()
	return out
}

type traceKey struct{}
type spanKey struct{}

func GenerateID() string {
	return uuid.NewString()
}

// Start 는 requestID 로 새 추적을 시작한다. 컨텍스트의 현재 span 은 0 이다.
func Start(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, traceKey{}, &Trace{RequestID: requestID})
}

func fromContext(ctx context.Context) *Trace {
	if ctx == nil {
		return nil
	}
	t, _ := ctx.Value(traceKey{}).(*Trace)
	return t
}

func RequestID(ctx context.Context) string {
	if t := fromContext(ctx); t != nil {
		return t.RequestID
	}
	return ""
}

// NewSpan 은 다음 span 을 발급해 컨텍스트에 붙인다.
// 추적이 없는 컨텍스트(헬스체크, 테스트 등)면 새 request id 로 추적을 시작한다.
func NewSpan(ctx context.Context) (context.Context, Span) {
	t := fromContext(ctx)
	if t == nil {
		ctx = Start(ctx, GenerateID())
		t = fromContext(ctx)
	}
	span := Span{RequestID: t.RequestID, ID: t.issued.Add(1)}
	return context.WithValue(ctx, spanKey{}, span), span
}

// SpanFromContext 는 NewSpan 으로 붙은 span 을 돌려준다.
// span 없이 추적만 있으면 inbound span(ID 0)과 false 를 돌려준다.
func SpanFromContext(ctx context.Context) (Span, bool) {
	if ctx == nil {
		return Span{}, false
	}
	if s, ok := ctx.Value(spanKey{}).(Span); ok {
		return s, true
	}
	return Span{RequestID: RequestID(ctx)}, false
}

// Issued 는 지금까지 발급된 upstream span 수다.
func Issued(ctx context.Context) int64 {
	if t := fromContext(ctx); t != nil {
		return t.issued.Load()
	}
	return 0
}
