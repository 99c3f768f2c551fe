package mailqueue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingMetrics struct {
	enqueued int
}

func (m *countingMetrics) IncMailEnqueued() { m.enqueued++ }

func newRedisQueue(t *testing.T) (*Queue, *miniredis.Miniredis, *countingMetrics) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	metrics := &countingMetrics{}
	return NewQueue(client, "test:mail:queue", metrics, nopLogger{}), mr, metrics
}

func TestQueue_RedisRoundtrip(t *testing.T) {
	q, _, metrics := newRedisQueue(t)
	ctx := context.Background()

	task := Task{Kind: KindConfirmation, VisitorID: "visitor-1"}
	require.NoError(t, q.Enqueue(ctx, task))
	assert.Equal(t, 1, metrics.enqueued)

	got, ok := q.Dequeue(ctx, time.Second)
	require.True(t, ok)
	assert.Equal(t, KindConfirmation, got.Kind)
	assert.Equal(t, "visitor-1", got.VisitorID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestQueue_FIFOOrder(t *testing.T) {
	q, _, _ := newRedisQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, Task{Kind: KindConfirmation, VisitorID: "first"}))
	require.NoError(t, q.Enqueue(ctx, Task{Kind: KindResend, VisitorID: "second"}))

	got, ok := q.Dequeue(ctx, time.Second)
	require.True(t, ok)
	assert.Equal(t, "first", got.VisitorID)

	got, ok = q.Dequeue(ctx, time.Second)
	require.True(t, ok)
	assert.Equal(t, "second", got.VisitorID)
}

func TestQueue_DeadLetter(t *testing.T) {
	q, mr, _ := newRedisQueue(t)
	ctx := context.Background()

	q.PushDeadLetter(ctx, Task{Kind: KindConfirmation, VisitorID: "doomed", Attempt: 3, LastError: "smtp down"})

	items, err := mr.List("test:mail:queue:deadletter")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0], "doomed")
	assert.Contains(t, items[0], "smtp down")
}

func TestQueue_MemoryFallbackWithoutRedis(t *testing.T) {
	metrics := &countingMetrics{}
	q := NewQueue(nil, "", metrics, nopLogger{})
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, Task{Kind: KindReschedule, VisitorID: "visitor-2"}))
	assert.Equal(t, 1, metrics.enqueued)

	got, ok := q.Dequeue(ctx, time.Second)
	require.True(t, ok)
	assert.Equal(t, "visitor-2", got.VisitorID)
}

func TestQueue_DequeueTimeout(t *testing.T) {
	q := NewQueue(nil, "", &countingMetrics{}, nopLogger{})

	start := time.Now()
	_, ok := q.Dequeue(context.Background(), 50*time.Millisecond)

	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestQueue_FallsBackToMemoryWhenRedisDown(t *testing.T) {
	q, mr, metrics := newRedisQueue(t)
	ctx := context.Background()

	mr.Close()

	require.NoError(t, q.Enqueue(ctx, Task{Kind: KindConfirmation, VisitorID: "visitor-3"}))
	assert.Equal(t, 1, metrics.enqueued)

	// Задача доступна из внутреннего канала, несмотря на недоступный redis
	got, ok := q.Dequeue(ctx, time.Second)
	require.True(t, ok)
	assert.Equal(t, "visitor-3", got.VisitorID)
}
