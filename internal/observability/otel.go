package observability

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"

	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

type OtelConfig struct {
	ServiceName string
	Environment string
	Version     string
}

// otelSettings is read once from the environment. Tracing is opt-in via
// OTEL_ENABLED; without an OTLP endpoint spans go to stdout.
type otelSettings struct {
	enabled     bool
	endpoint    string
	insecure    bool
	sampleRatio float64
	headers     map[string]string
}

var (
	otelOnce     sync.Once
	otelShutdown func(context.Context) error
)

// InitOTel installs the global tracer provider. When tracing is disabled
// it returns nil and leaves the provider untouched. Failures during setup
// degrade to warnings; the service runs untraced rather than not at all.
func InitOTel(ctx context.Context, log *logger.Logger, cfg OtelConfig) func(context.Context) error {
	otelOnce.Do(func() {
		set := otelSettingsFromEnv()
		if !set.enabled {
			return
		}
		serviceName := strings.TrimSpace(cfg.ServiceName)
		if serviceName == "" {
			serviceName = "ideaforge"
		}

		res, err := resource.New(ctx, resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(strings.TrimSpace(cfg.Version)),
			attribute.String("deployment.environment", strings.TrimSpace(cfg.Environment)),
		))
		if err != nil && log != nil {
			log.Warn("otel resource init failed (continuing)", "error", err)
		}

		opts := []sdktrace.TracerProviderOption{
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(set.sampleRatio))),
			sdktrace.WithResource(res),
		}
		exporter, expErr := set.buildExporter(ctx)
		if expErr != nil {
			if log != nil {
				log.Warn("otel exporter init failed (continuing)", "error", expErr)
			}
		} else {
			opts = append(opts, sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)))
		}

		tp := sdktrace.NewTracerProvider(opts...)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
		otelShutdown = tp.Shutdown

		if log != nil {
			if set.endpoint == "" {
				log.Warn("otel using stdout exporter (no OTLP endpoint configured)")
			}
			log.Info("otel tracing initialized", "service", serviceName, "endpoint", set.endpoint)
		}
	})
	return otelShutdown
}

func otelSettingsFromEnv() otelSettings {
	set := otelSettings{
		enabled:     envBool("OTEL_ENABLED"),
		endpoint:    envStr("OTEL_EXPORTER_OTLP_ENDPOINT"),
		insecure:    envBool("OTEL_EXPORTER_OTLP_INSECURE"),
		sampleRatio: 0.1,
		headers:     parseHeaderList(envStr("OTEL_EXPORTER_OTLP_HEADERS")),
	}
	if raw := envStr("OTEL_SAMPLER_RATIO"); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			set.sampleRatio = min(max(f, 0), 1)
		}
	}
	return set
}

func (s otelSettings) buildExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if s.endpoint == "" {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(s.endpoint)}
	if s.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	if len(s.headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(s.headers))
	}
	return otlptracehttp.New(ctx, opts...)
}

// parseHeaderList parses the standard comma-separated k=v header form.
func parseHeaderList(raw string) map[string]string {
	headers := map[string]string{}
	for _, part := range strings.Split(raw, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		if key == "" || val == "" {
			continue
		}
		headers[key] = val
	}
	if len(headers) == 0 {
		return nil
	}
	return headers
}

func envStr(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envBool(key string) bool {
	switch strings.ToLower(envStr(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
