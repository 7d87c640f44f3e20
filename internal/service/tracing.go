package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/internal/langfuse"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "nutrition-coach-api/service"

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// setObservation attaches JSON input/output payloads for Langfuse's OTLP view.
func setObservation(span trace.Span, key string, payload any) {
	if data, err := json.Marshal(payload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation."+key, string(data)))
	}
}

// recordTrace sends a Langfuse trace keyed by the current OTel trace ID when one exists.
// It returns the ID clients can use for feedback, or "" when neither is available.
func recordTrace(ctx context.Context, client langfuse.Client, in langfuse.TraceInput) string {
	otelID := ""
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		otelID = sc.TraceID().String()
	}

	if client == nil || !client.IsEnabled() {
		return otelID
	}

	in.ID = otelID
	traceID, err := client.CreateTrace(ctx, in)
	if err != nil || traceID == "" {
		return otelID
	}
	return traceID
}

// modelCall describes one collaborator call for the Langfuse generation record.
type modelCall struct {
	model  string
	source string
	start  time.Time
	end    time.Time
}

// generation converts a call into a Langfuse generation. Fallback results are
// recorded at warning level so they stand out in the trace list.
func (c modelCall) generation(input, output any) *langfuse.Generation {
	g := &langfuse.Generation{
		Model:     c.model,
		StartTime: c.start,
		EndTime:   c.end,
		Input:     input,
		Output:    output,
		Level:     langfuse.LevelDefault,
	}
	if c.source == domain.SourceFallback {
		g.Level = langfuse.LevelWarning
		g.StatusMessage = "local fallback used"
	}
	return g
}
