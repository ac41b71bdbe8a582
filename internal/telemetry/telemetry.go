// Package telemetry exports attach traffic metrics over OTLP/HTTP.
//
// When no endpoint is configured the meters are no-ops, so callers can
// record unconditionally.
package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/renato0307/muxdeck/internal/version"
)

const serviceName = "muxdeck"

// Config holds the exporter settings
type Config struct {
	Endpoint string // OTLP base URL, e.g. "http://localhost:4318"
	Headers  string // Comma-separated key=value pairs
	Interval time.Duration
}

// Telemetry owns the meter provider and the instruments
type Telemetry struct {
	mp *sdkmetric.MeterProvider

	Metrics *Metrics
}

// parseHeaders parses "key=value,key2=value2" (OTEL_EXPORTER_OTLP_HEADERS format)
func parseHeaders(raw string) map[string]string {
	headers := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		idx := strings.Index(pair, "=")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(pair[:idx])
		if key != "" {
			headers[key] = strings.TrimSpace(pair[idx+1:])
		}
	}
	return headers
}

// Init sets up the OTLP metric exporter. An empty endpoint yields no-op instruments.
func Init(ctx context.Context, cfg Config) (*Telemetry, error) {
	t := &Telemetry{}

	if cfg.Endpoint != "" {
		u, err := url.Parse(cfg.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("telemetry: invalid endpoint URL %q: %w", cfg.Endpoint, err)
		}

		opts := []otlpmetrichttp.Option{
			otlpmetrichttp.WithEndpoint(u.Host),
			otlpmetrichttp.WithURLPath(strings.TrimRight(u.Path, "/") + "/v1/metrics"),
		}
		if u.Scheme == "http" {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		if headers := parseHeaders(cfg.Headers); len(headers) > 0 {
			opts = append(opts, otlpmetrichttp.WithHeaders(headers))
		}

		exporter, err := otlpmetrichttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("telemetry metric exporter: %w", err)
		}

		res, err := resource.New(ctx,
			resource.WithAttributes(
				attribute.String("service.name", serviceName),
				attribute.String("service.version", version.Version),
			),
			resource.WithHost(),
		)
		if err != nil {
			return nil, fmt.Errorf("telemetry resource: %w", err)
		}

		interval := cfg.Interval
		if interval <= 0 {
			interval = 15 * time.Second
		}
		t.mp = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
			sdkmetric.WithResource(res),
		)
		otel.SetMeterProvider(t.mp)
	}

	metrics, err := NewMetrics(otel.GetMeterProvider())
	if err != nil {
		return nil, fmt.Errorf("telemetry metrics: %w", err)
	}
	t.Metrics = metrics

	return t, nil
}

// Shutdown flushes pending metrics
func (t *Telemetry) Shutdown(ctx context.Context) {
	if t == nil || t.mp == nil {
		return
	}
	_ = t.mp.Shutdown(ctx)
}
