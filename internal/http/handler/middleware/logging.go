package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type LoggingMiddleware struct {
	logs *zap.SugaredLogger
}

func NewLoggingMiddleware(logger *zap.SugaredLogger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logs: logger,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Logging writes one entry per request and turns handler panics into a 500.
func (m *LoggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			if err := recover(); err != nil {
				m.logs.Errorw("panic recovered",
					"error", err,
					"path", r.URL.Path,
					"request_id", RequestIDFrom(r.Context()))
				http.Error(rec, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}

			m.logs.Infow("API request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", rec.status,
				"duration", time.Since(start).String(),
				"client_ip", r.RemoteAddr,
				"request_id", RequestIDFrom(r.Context()))
		}()

		next.ServeHTTP(rec, r)
	})
}
