package xmetrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	defaultInstrumentationName = "github.com/omeyang/xlrukit/xmetrics"
	unknownCache               = "default"

	metricLookups   = "xlru.lookups"
	metricInserts   = "xlru.inserts"
	metricEvictions = "xlru.evictions"
	metricSize      = "xlru.size"
	metricCapacity  = "xlru.capacity"

	attrCache  = "cache"
	attrResult = "result"
	attrKind   = "kind"
)

type otelConfig struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
}

// Option 定义 OTelRecorder 的配置选项。
type Option func(*otelConfig)

// WithInstrumentationName 设置 OTel instrumentation 名称。
func WithInstrumentationName(name string) Option {
	return func(cfg *otelConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider，nil 时使用全局 Provider。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// OTelRecorder 是基于 OpenTelemetry 的 [Recorder]。
// 所有方法都是并发安全的。
type OTelRecorder struct {
	meter     metric.Meter
	cacheAttr attribute.KeyValue

	lookups   metric.Int64Counter
	inserts   metric.Int64Counter
	evictions metric.Int64Counter
	size      metric.Int64ObservableGauge
	capacity  metric.Int64ObservableGauge

	// 预先构造的属性集，避免热路径分配
	hitOpts    []metric.AddOption
	missOpts   []metric.AddOption
	newOpts    []metric.AddOption
	updateOpts []metric.AddOption
	cacheOpts  []metric.AddOption
}

var _ Recorder = (*OTelRecorder)(nil)

// NewOTelRecorder 创建 OTelRecorder。cacheName 作为 cache 属性附加到所有指标上，
// 为空时使用 "default"。
func NewOTelRecorder(cacheName string, opts ...Option) (*OTelRecorder, error) {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cacheName == "" {
		cacheName = unknownCache
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)
	r := &OTelRecorder{
		meter:     meter,
		cacheAttr: attribute.String(attrCache, cacheName),
	}

	var err error
	if r.lookups, err = meter.Int64Counter(metricLookups,
		metric.WithDescription("cache lookups"), metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateInstrument, metricLookups, err)
	}
	if r.inserts, err = meter.Int64Counter(metricInserts,
		metric.WithDescription("cache inserts"), metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateInstrument, metricInserts, err)
	}
	if r.evictions, err = meter.Int64Counter(metricEvictions,
		metric.WithDescription("capacity evictions"), metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateInstrument, metricEvictions, err)
	}
	if r.size, err = meter.Int64ObservableGauge(metricSize,
		metric.WithDescription("current number of entries"), metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateInstrument, metricSize, err)
	}
	if r.capacity, err = meter.Int64ObservableGauge(metricCapacity,
		metric.WithDescription("configured capacity"), metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateInstrument, metricCapacity, err)
	}

	r.hitOpts = r.addOpts(attribute.String(attrResult, "hit"))
	r.missOpts = r.addOpts(attribute.String(attrResult, "miss"))
	r.newOpts = r.addOpts(attribute.String(attrKind, "new"))
	r.updateOpts = r.addOpts(attribute.String(attrKind, "update"))
	r.cacheOpts = r.addOpts()
	return r, nil
}

// RecordLookup 记录一次 Get。
func (r *OTelRecorder) RecordLookup(hit bool) {
	if hit {
		r.lookups.Add(context.Background(), 1, r.hitOpts...)
		return
	}
	r.lookups.Add(context.Background(), 1, r.missOpts...)
}

// RecordInsert 记录一次 Put。
func (r *OTelRecorder) RecordInsert(update, evicted bool) {
	ctx := context.Background()
	if update {
		r.inserts.Add(ctx, 1, r.updateOpts...)
	} else {
		r.inserts.Add(ctx, 1, r.newOpts...)
	}
	if evicted {
		r.evictions.Add(ctx, 1, r.cacheOpts...)
	}
}

// Observe 为 src 注册 size/capacity 异步 Gauge，返回注销函数。
func (r *OTelRecorder) Observe(src Source) (func() error, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	set := metric.WithAttributeSet(attribute.NewSet(r.cacheAttr))
	reg, err := r.meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(r.size, int64(src.Len()), set)
		o.ObserveInt64(r.capacity, int64(src.Capacity()), set)
		return nil
	}, r.size, r.capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegisterCallback, err)
	}
	return reg.Unregister, nil
}

func (r *OTelRecorder) addOpts(extra ...attribute.KeyValue) []metric.AddOption {
	kvs := append([]attribute.KeyValue{r.cacheAttr}, extra...)
	return []metric.AddOption{metric.WithAttributeSet(attribute.NewSet(kvs...))}
}
