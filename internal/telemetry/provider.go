// internal/telemetry/provider.go
package telemetry

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const serviceName = "tank-arena"

// Config describes where the counters are exported.
type Config struct {
	Enabled  bool
	Interval time.Duration
	Writer   io.Writer // JSON lines of exported metrics
}

// Provider владеет MeterProvider SDK. В выключенном состоянии отдаёт no-op meter.
type Provider struct {
	mp *sdkmetric.MeterProvider
}

// NewProvider builds a periodic stdout exporter over cfg.Writer and installs
// it as the global meter provider.
func NewProvider(cfg Config) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{}, nil
	}
	if cfg.Writer == nil {
		return nil, fmt.Errorf("telemetry: enabled without a writer")
	}
	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(cfg.Writer))
	if err != nil {
		return nil, fmt.Errorf("telemetry: exporter: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
	)
	otel.SetMeterProvider(mp)
	return &Provider{mp: mp}, nil
}

func (p *Provider) Enabled() bool {
	return p.mp != nil
}

// Meter returns the meter the Recorder should create its counters on.
func (p *Provider) Meter() metric.Meter {
	if p.mp == nil {
		return noop.NewMeterProvider().Meter(instrumentationName)
	}
	return p.mp.Meter(instrumentationName)
}

// Shutdown выгружает накопленные значения и останавливает экспорт.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.mp == nil {
		return nil
	}
	if err := p.mp.Shutdown(ctx); err != nil {
		return fmt.Errorf("telemetry: shutdown: %w", err)
	}
	return nil
}
