package xmetrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Totals 是某个缓存的指标汇总。
type Totals struct {
	Hits      int64
	Misses    int64
	Inserts   int64
	Updates   int64
	Evictions int64
	Size      int64
	Capacity  int64
}

// HitRatio 返回命中率，没有查找时返回 0。
func (t Totals) HitRatio() float64 {
	lookups := t.Hits + t.Misses
	if lookups == 0 {
		return 0
	}
	return float64(t.Hits) / float64(lookups)
}

// Collect 从 reader 采集一次数据，汇总 cacheName 对应的指标。
// 用于命令行工具与测试；生产环境应交给 exporter。
func Collect(ctx context.Context, reader sdkmetric.Reader, cacheName string) (Totals, error) {
	if cacheName == "" {
		cacheName = unknownCache
	}
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return Totals{}, fmt.Errorf("xmetrics: collect: %w", err)
	}

	var t Totals
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			for _, dp := range int64Points(m.Data) {
				if attrString(dp.Attributes, attrCache) != cacheName {
					continue
				}
				switch m.Name {
				case metricLookups:
					if attrString(dp.Attributes, attrResult) == "hit" {
						t.Hits += dp.Value
					} else {
						t.Misses += dp.Value
					}
				case metricInserts:
					if attrString(dp.Attributes, attrKind) == "update" {
						t.Updates += dp.Value
					} else {
						t.Inserts += dp.Value
					}
				case metricEvictions:
					t.Evictions += dp.Value
				case metricSize:
					t.Size = dp.Value
				case metricCapacity:
					t.Capacity = dp.Value
				}
			}
		}
	}
	return t, nil
}

func int64Points(data metricdata.Aggregation) []metricdata.DataPoint[int64] {
	switch d := data.(type) {
	case metricdata.Sum[int64]:
		return d.DataPoints
	case metricdata.Gauge[int64]:
		return d.DataPoints
	default:
		return nil
	}
}

func attrString(set attribute.Set, key string) string {
	v, ok := set.Value(attribute.Key(key))
	if !ok {
		return ""
	}
	return v.AsString()
}
