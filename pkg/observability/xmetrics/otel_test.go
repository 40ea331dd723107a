package xmetrics

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// ============================================================================
// 测试辅助函数
// ============================================================================

// newTestMeterProvider 创建用于测试的 MeterProvider
func newTestMeterProvider(t *testing.T) (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	return mp, reader
}

type fakeSource struct {
	size, capacity int
}

func (f fakeSource) Len() int      { return f.size }
func (f fakeSource) Capacity() int { return f.capacity }

// ============================================================================
// NewOTelRecorder 测试
// ============================================================================

func TestNewOTelRecorder_Default(t *testing.T) {
	rec, err := NewOTelRecorder("")
	require.NoError(t, err)
	require.NotNil(t, rec)

	// 全局 noop provider 下记录不应 panic
	rec.RecordLookup(true)
	rec.RecordInsert(false, true)
}

func TestNewOTelRecorder_NilOptions(t *testing.T) {
	rec, err := NewOTelRecorder("c", nil, WithMeterProvider(nil), WithInstrumentationName(""))
	require.NoError(t, err)
	assert.NotNil(t, rec)
}

func TestOTelRecorder_Counters(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	rec, err := NewOTelRecorder("users", WithMeterProvider(mp))
	require.NoError(t, err)

	rec.RecordLookup(true)
	rec.RecordLookup(true)
	rec.RecordLookup(false)
	rec.RecordInsert(false, false)
	rec.RecordInsert(false, true)
	rec.RecordInsert(true, false)

	totals, err := Collect(context.Background(), reader, "users")
	require.NoError(t, err)
	assert.Equal(t, int64(2), totals.Hits)
	assert.Equal(t, int64(1), totals.Misses)
	assert.Equal(t, int64(2), totals.Inserts)
	assert.Equal(t, int64(1), totals.Updates)
	assert.Equal(t, int64(1), totals.Evictions)
	assert.InDelta(t, 2.0/3.0, totals.HitRatio(), 1e-9)
}

func TestOTelRecorder_SeparatesCaches(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	a, err := NewOTelRecorder("a", WithMeterProvider(mp))
	require.NoError(t, err)
	b, err := NewOTelRecorder("b", WithMeterProvider(mp))
	require.NoError(t, err)

	a.RecordLookup(true)
	b.RecordLookup(false)
	b.RecordLookup(false)

	ta, err := Collect(context.Background(), reader, "a")
	require.NoError(t, err)
	tb, err := Collect(context.Background(), reader, "b")
	require.NoError(t, err)

	assert.Equal(t, int64(1), ta.Hits)
	assert.Equal(t, int64(0), ta.Misses)
	assert.Equal(t, int64(0), tb.Hits)
	assert.Equal(t, int64(2), tb.Misses)
}

func TestOTelRecorder_Observe(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	rec, err := NewOTelRecorder("", WithMeterProvider(mp))
	require.NoError(t, err)

	unregister, err := rec.Observe(fakeSource{size: 3, capacity: 8})
	require.NoError(t, err)

	totals, err := Collect(context.Background(), reader, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), totals.Size)
	assert.Equal(t, int64(8), totals.Capacity)

	require.NoError(t, unregister())
}

func TestOTelRecorder_ObserveNil(t *testing.T) {
	rec, err := NewOTelRecorder("x")
	require.NoError(t, err)

	_, err = rec.Observe(nil)
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestOTelRecorder_Concurrent(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	rec, err := NewOTelRecorder("c", WithMeterProvider(mp))
	require.NoError(t, err)

	const workers, perWorker = 8, 500
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				rec.RecordLookup(i%2 == 0)
			}
		}()
	}
	wg.Wait()

	totals, err := Collect(context.Background(), reader, "c")
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), totals.Hits+totals.Misses)
}

func TestTotals_HitRatioEmpty(t *testing.T) {
	assert.Zero(t, Totals{}.HitRatio())
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.RecordLookup(true)
	r.RecordInsert(true, true)
}
