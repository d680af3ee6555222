package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type loggerKey struct{}
type requestIDKey struct{}

// WithRequestContext returns middleware that assigns every request an id and
// stores a request-scoped logger in the context. When the request carries a
// valid trace span, the trace and span ids become log fields too.
func WithRequestContext(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			reqLogger := logger.With(zap.String("request_id", requestID))

			if span := trace.SpanFromContext(r.Context()); span.SpanContext().IsValid() {
				reqLogger = reqLogger.With(
					zap.String("trace_id", span.SpanContext().TraceID().String()),
					zap.String("span_id", span.SpanContext().SpanID().String()),
				)
			}

			ctx := context.WithValue(r.Context(), loggerKey{}, reqLogger)
			ctx = context.WithValue(ctx, requestIDKey{}, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggerFromRequest retrieves the request-scoped logger, falling back to the
// provided logger when the middleware did not run.
func LoggerFromRequest(r *http.Request, fallback *zap.Logger) *zap.Logger {
	if logger, ok := r.Context().Value(loggerKey{}).(*zap.Logger); ok {
		return logger
	}
	return fallback
}

// RequestIDFromRequest returns the id assigned by WithRequestContext, or an
// empty string when the middleware did not run.
func RequestIDFromRequest(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
