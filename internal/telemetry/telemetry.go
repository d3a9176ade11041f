// Package telemetry installs the global OpenTelemetry tracer and meter
// providers.
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"gitlab.com/yelinaung/expense-tracker/internal/config"
	"gitlab.com/yelinaung/expense-tracker/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ShutdownFunc flushes and stops the installed providers.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup configures tracing and metrics for the selected exporter. With
// config.ExporterNone the global no-op providers stay in place.
// The OTLP exporters read OTEL_EXPORTER_OTLP_* settings from the environment.
func Setup(ctx context.Context, cfg *config.Config) (ShutdownFunc, error) {
	var (
		spanExporter   sdktrace.SpanExporter
		metricExporter sdkmetric.Exporter
		err            error
	)

	switch cfg.OTelExporter {
	case config.ExporterNone, "":
		return noopShutdown, nil
	case config.ExporterStdout:
		if spanExporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint()); err != nil {
			return nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
		}
		if metricExporter, err = stdoutmetric.New(); err != nil {
			return nil, fmt.Errorf("failed to create stdout metric exporter: %w", err)
		}
	case config.ExporterOTLP:
		if spanExporter, err = otlptracehttp.New(ctx); err != nil {
			return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
		}
		if metricExporter, err = otlpmetrichttp.New(ctx); err != nil {
			return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown telemetry exporter %q", cfg.OTelExporter)
	}

	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Log.Info().
		Str("exporter", cfg.OTelExporter).
		Str("service", cfg.ServiceName).
		Msg("Telemetry initialized")

	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}
