package telemetry

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/unkn0wn-root/themekit/internal/errdef"
)

var tracerName = "github.com/unkn0wn-root/themekit/internal/telemetry"

type Instrumenter interface {
	Start(ctx context.Context, info OperationStart) (context.Context, OperationSpan)
	Shutdown(ctx context.Context) error
}

// OperationStart describes one import or export call.
type OperationStart struct {
	// Op is the operation name; the span is called "themekit.<Op>".
	Op     string
	Format string
	Theme  string
	// Size is the input length in bytes, when known.
	Size int
}

type OperationResult struct {
	Err error
	// Output is the produced text length in bytes.
	Output   int
	Accepted int
	Skipped  []string
}

type OperationSpan interface {
	End(result OperationResult)
}

type providerOptions struct {
	exporter       sdktrace.SpanExporter
	spanProcessors []sdktrace.SpanProcessor
}

type Option func(*providerOptions)

func WithSpanProcessor(proc sdktrace.SpanProcessor) Option {
	return func(opts *providerOptions) {
		if proc != nil {
			opts.spanProcessors = append(opts.spanProcessors, proc)
		}
	}
}

func WithExporter(exp sdktrace.SpanExporter) Option {
	return func(opts *providerOptions) {
		if exp != nil {
			opts.exporter = exp
		}
	}
}

type manager struct {
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
	shutdown sync.Once
}

func New(cfg Config, opts ...Option) (Instrumenter, error) {
	builder := providerOptions{}
	for _, opt := range opts {
		opt(&builder)
	}

	if !cfg.Enabled() && builder.exporter == nil && len(builder.spanProcessors) == 0 {
		return Noop(), nil
	}

	res, err := resource.New(
		context.Background(),
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(buildResourceAttributes(cfg)...),
	)
	if err != nil {
		return nil, err
	}

	exporter := builder.exporter
	if exporter == nil && cfg.Enabled() {
		exporter, err = newExporter(cfg)
		if err != nil {
			return nil, err
		}
	}

	var tpOpts []sdktrace.TracerProviderOption
	tpOpts = append(tpOpts, sdktrace.WithResource(res))
	if exporter != nil {
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exporter))
	}
	for _, proc := range builder.spanProcessors {
		tpOpts = append(tpOpts, sdktrace.WithSpanProcessor(proc))
	}

	tp := sdktrace.NewTracerProvider(tpOpts...)
	return &manager{tracer: tp.Tracer(tracerName), provider: tp}, nil
}

func (m *manager) Start(ctx context.Context, info OperationStart) (context.Context, OperationSpan) {
	ctx, span := m.tracer.Start(
		ctx,
		spanName(info.Op),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(buildSpanAttributes(info)...),
	)
	return ctx, &operationSpan{span: span}
}

func (m *manager) Shutdown(ctx context.Context) error {
	if m == nil || m.provider == nil {
		return nil
	}
	var shutdownErr error
	m.shutdown.Do(func() {
		shutdownErr = m.provider.Shutdown(ctx)
	})
	return shutdownErr
}

type operationSpan struct {
	span trace.Span
}

func (sp *operationSpan) End(result OperationResult) {
	if sp == nil || sp.span == nil {
		return
	}

	if result.Output > 0 {
		sp.span.SetAttributes(attribute.Int("themekit.output_bytes", result.Output))
	}
	if result.Accepted > 0 {
		sp.span.SetAttributes(attribute.Int("themekit.accepted", result.Accepted))
	}
	for _, name := range result.Skipped {
		sp.span.AddEvent(
			"themekit.theme_skipped",
			trace.WithAttributes(attribute.String("themekit.theme", name)),
		)
	}

	if result.Err != nil {
		sp.span.RecordError(result.Err)
		sp.span.SetAttributes(attribute.String("themekit.error_code", string(errdef.CodeOf(result.Err))))
		if field := errdef.FieldOf(result.Err); field != "" {
			sp.span.SetAttributes(attribute.String("themekit.error_field", field))
		}
		sp.span.SetStatus(codes.Error, result.Err.Error())
	} else {
		sp.span.SetStatus(codes.Ok, "OK")
	}
	sp.span.End()
}

func Noop() Instrumenter {
	return noopInstrumenter{}
}

type noopInstrumenter struct{}

type noopSpan struct{}

func (noopInstrumenter) Start(ctx context.Context, _ OperationStart) (context.Context, OperationSpan) {
	return ctx, noopSpan{}
}

func (noopInstrumenter) Shutdown(context.Context) error { return nil }

func (noopSpan) End(OperationResult) {}

func newExporter(cfg Config) (sdktrace.SpanExporter, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("telemetry endpoint is required")
	}

	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	clientOpts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		clientOpts = append(clientOpts, otlptracegrpc.WithInsecure())
	}
	if len(cfg.Headers) > 0 {
		clientOpts = append(clientOpts, otlptracegrpc.WithHeaders(cfg.Headers))
	}

	client := otlptracegrpc.NewClient(clientOpts...)
	return otlptrace.New(ctx, client)
}

func buildResourceAttributes(cfg Config) []attribute.KeyValue {
	name := cfg.ServiceName
	if strings.TrimSpace(name) == "" {
		name = defaultServiceName
	}
	attrs := []attribute.KeyValue{
		semconv.ServiceName(name),
	}
	if strings.TrimSpace(cfg.Version) != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.Version))
	}
	return attrs
}

func buildSpanAttributes(info OperationStart) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if f := strings.TrimSpace(info.Format); f != "" {
		attrs = append(attrs, attribute.String("themekit.format", f))
	}
	if name := strings.TrimSpace(info.Theme); name != "" {
		attrs = append(attrs, attribute.String("themekit.theme", name))
	}
	if info.Size > 0 {
		attrs = append(attrs, attribute.Int("themekit.input_bytes", info.Size))
	}
	return attrs
}

func spanName(op string) string {
	op = strings.TrimSpace(op)
	if op == "" {
		op = "operation"
	}
	return "themekit." + op
}
