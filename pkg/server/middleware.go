package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 128

type requestIDKey struct{}

// RequestIDFromContext returns the request ID assigned by the server, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// requestID propagates a client-supplied X-Request-ID or assigns a new UUID,
// echoes it in the response and logs the request at debug level.
func requestID(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, hr *http.Request) {
		id := hr.Header.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}

		rw.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(hr.Context(), requestIDKey{}, id)
		start := time.Now()

		next.ServeHTTP(rw, hr.WithContext(ctx))

		logger.DebugContext(ctx, "request served",
			"request_id", id,
			"method", hr.Method,
			"path", hr.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// annotateSpan tags the active span with the request ID.
func annotateSpan(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, hr *http.Request) {
		if id := RequestIDFromContext(hr.Context()); id != "" {
			trace.SpanFromContext(hr.Context()).SetAttributes(attribute.String("request.id", id))
		}

		next.ServeHTTP(rw, hr)
	})
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}

	for _, r := range id {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || r == ' ' {
			return false
		}
	}

	return true
}
