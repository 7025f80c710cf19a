package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Tracing starts an OpenTelemetry span for each HTTP request and propagates
// the context to handlers, services and the Fitbit client. Incoming W3C
// trace headers are honoured. Once routing is done the span is renamed to the
// chi route pattern so every date shares one span name.
func Tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer("fitbit-sleep/http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		// Request metadata doubles as the Langfuse observation input.
		input := map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
		}
		if r.URL.RawQuery != "" {
			input["query"] = r.URL.RawQuery
		}
		if id := chimw.GetReqID(ctx); id != "" {
			input["request_id"] = id
			span.SetAttributes(attribute.String("http.request_id", id))
		}
		setJSONAttribute(span, "langfuse.observation.input", input)

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				span.SetName(r.Method + " " + pattern)
				span.SetAttributes(attribute.String("http.route", pattern))
			}
		}
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
		setJSONAttribute(span, "langfuse.observation.output", map[string]any{
			"status_code": status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}

func setJSONAttribute(span trace.Span, key string, v any) {
	if data, err := json.Marshal(v); err == nil {
		span.SetAttributes(attribute.String(key, string(data)))
	}
}
