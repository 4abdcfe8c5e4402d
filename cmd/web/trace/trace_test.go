package trace

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanvue-front/cmd/internal/logger"
)

func TestGenerateIDIsUUID(t *testing.T) {
	id := GenerateID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, GenerateID())
}

func TestSpanFromContextWithoutSpan(t *testing.T) {
	span, ok := SpanFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "0", span.String())
	assert.Empty(t, span.RequestID)

	ctx := Start(context.Background(), "req-0")
	span, ok = SpanFromContext(ctx)
	assert.False(t, ok)
	assert.Equal(t, Span{RequestID: "req-0"}, span)
	assert.Equal(t, int64(0), Issued(ctx))
}

func TestNewSpanWithoutTraceStartsOne(t *testing.T) {
	ctx, span := NewSpan(context.Background())

	_, err := uuid.Parse(span.RequestID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), span.ID)
	assert.Equal(t, span.RequestID, RequestID(ctx))

	got, ok := SpanFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, span, got)
}

func TestNewSpanIsUniqueUnderConcurrency(t *testing.T) {
	ctx := Start(context.Background(), "req-1")

	const calls = 50
	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{}, calls)
		wg   sync.WaitGroup
	)
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, span := NewSpan(ctx)
			assert.Equal(t, "req-1", span.RequestID)
			mu.Lock()
			seen[span.ID] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, calls)
	assert.Equal(t, int64(calls), Issued(ctx))
	// 자식 컨텍스트의 span 은 부모에서 보이지 않는다.
	_, ok := SpanFromContext(ctx)
	assert.False(t, ok)
}

func TestSpanFieldsDoesNotMutateInput(t *testing.T) {
	extra := logger.Fields{"post_id": 3}
	fields := Span{RequestID: "req-2", ID: 4}.Fields(extra)

	assert.Equal(t, logger.Fields{"post_id": 3, "request_id": "req-2", "span_id": "4"}, fields)
	assert.Len(t, extra, 1)
}
