package metrics

import (
	"context"
	"fmt"
	"tinyhttp/internal/http/request"
	"tinyhttp/internal/http/status"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "tinyhttp/internal/transport"

// Recorder counts request outcomes for the connection handler.
type Recorder interface {
	ParseError(ctx context.Context, kind request.Kind)
	Response(ctx context.Context, code status.Code)
}

type recorder struct {
	parseErrors metric.Int64Counter
	responses   metric.Int64Counter
}

// New builds a Recorder on provider. A nil provider uses the global one.
func New(provider metric.MeterProvider) (Recorder, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(meterName)

	parseErrors, err := meter.Int64Counter(
		"http.server.parse_errors",
		metric.WithDescription("Requests rejected by the parser, by error kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("create parse error counter: %w", err)
	}

	responses, err := meter.Int64Counter(
		"http.server.responses",
		metric.WithDescription("Responses written, by status code"),
	)
	if err != nil {
		return nil, fmt.Errorf("create response counter: %w", err)
	}

	return &recorder{
		parseErrors: parseErrors,
		responses:   responses,
	}, nil
}

func (r *recorder) ParseError(ctx context.Context, kind request.Kind) {
	r.parseErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind.String())))
}

func (r *recorder) Response(ctx context.Context, code status.Code) {
	r.responses.Add(ctx, 1, metric.WithAttributes(attribute.Int("code", int(code.Code()))))
}
