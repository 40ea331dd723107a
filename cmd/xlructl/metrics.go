package main

import (
	"context"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/omeyang/xlrukit/pkg/observability/xmetrics"
)

// meter 进程内指标：ManualReader 按需读取，不导出。
type meter struct {
	name     string
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
	recorder *xmetrics.OTelRecorder
}

func newMeter(cacheName string) (*meter, error) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	recorder, err := xmetrics.NewOTelRecorder(cacheName,
		xmetrics.WithMeterProvider(provider),
		xmetrics.WithInstrumentationName("github.com/omeyang/xlrukit/cmd/xlructl"),
	)
	if err != nil {
		_ = provider.Shutdown(context.Background())
		return nil, err
	}
	return &meter{name: cacheName, reader: reader, provider: provider, recorder: recorder}, nil
}

func (m *meter) totals(ctx context.Context) (xmetrics.Totals, error) {
	return xmetrics.Collect(ctx, m.reader, m.name)
}

func (m *meter) shutdown(ctx context.Context) error {
	return m.provider.Shutdown(ctx)
}
