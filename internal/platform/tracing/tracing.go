// Package tracing configures the process-wide OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/coursedesk/course-api/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// DefaultServiceName is reported when tracing.service_name is empty.
const DefaultServiceName = "course-api"

// ShutdownFunc flushes pending spans and releases the exporter.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup installs a tracer provider and W3C propagators according to cfg.
// When tracing is disabled only the propagators are installed and the
// returned ShutdownFunc does nothing.
func Setup(
	ctx context.Context,
	cfg config.TracingConfig,
	environment string,
	logger *slog.Logger,
) (ShutdownFunc, error) {
	if logger == nil {
		logger = slog.Default()
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.Enabled {
		logger.Debug("tracing disabled")
		return noopShutdown, nil
	}

	exporter, err := newExporter(ctx, cfg, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s trace exporter: %w", cfg.Exporter, err)
	}

	res, err := newResource(ctx, cfg, environment)
	if err != nil {
		// A partial resource is still usable
		logger.Warn("otel resource init failed (continuing)", slog.String("error", err.Error()))
	}

	tp := newProvider(exporter, res, cfg.SampleRatio)
	otel.SetTracerProvider(tp)

	logger.Info("tracing initialized",
		slog.String("exporter", exporterName(cfg)),
		slog.String("service", serviceName(cfg)),
		slog.Float64("sample_ratio", cfg.SampleRatio))

	return tp.Shutdown, nil
}

func newProvider(
	exporter sdktrace.SpanExporter,
	res *resource.Resource,
	ratio float64,
) *sdktrace.TracerProvider {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	}
	if res != nil {
		opts = append(opts, sdktrace.WithResource(res))
	}
	return sdktrace.NewTracerProvider(opts...)
}

func newExporter(
	ctx context.Context,
	cfg config.TracingConfig,
	stdout io.Writer,
) (sdktrace.SpanExporter, error) {
	if exporterName(cfg) == "otlp" {
		var opts []otlptracehttp.Option
		if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
		}
		return otlptracehttp.New(ctx, opts...)
	}
	return stdouttrace.New(stdouttrace.WithWriter(stdout))
}

func newResource(
	ctx context.Context,
	cfg config.TracingConfig,
	environment string,
) (*resource.Resource, error) {
	return resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName(cfg)),
			attribute.String("deployment.environment", environment),
		),
	)
}

func exporterName(cfg config.TracingConfig) string {
	if cfg.Exporter == "" {
		return "stdout"
	}
	return cfg.Exporter
}

func serviceName(cfg config.TracingConfig) string {
	if name := strings.TrimSpace(cfg.ServiceName); name != "" {
		return name
	}
	return DefaultServiceName
}
