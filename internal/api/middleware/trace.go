package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taskboard-hq/taskboard-api/internal/api/shared"
	"github.com/taskboard-hq/taskboard-api/internal/platform/logger"
)

// Trace assigns each request a trace ID and a logger pre-tagged with it.
// Applied early so everything downstream logs with the same correlation
// key.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
