// file: internal/middleware/request_id.go
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"jobtrust/internal/contextutils"
)

// Request ID header constants
const (
	HeaderXRequestID     = "X-Request-ID"
	HeaderXCorrelationID = "X-Correlation-ID"
)

// maxRequestIDLength caps client supplied ids before they reach the logs
const maxRequestIDLength = 128

// RequestID reuses or generates a correlation id and injects a
// request-scoped logger carrying it.
func RequestID(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(HeaderXRequestID)
			if requestID == "" {
				requestID = r.Header.Get(HeaderXCorrelationID)
			}
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = newRequestID(start)
			}

			w.Header().Set(HeaderXRequestID, requestID)

			requestLogger := logger.With(
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)

			ctx := contextutils.WithRequestID(r.Context(), requestID)
			ctx = contextutils.WithLogger(ctx, requestLogger)
			ctx = contextutils.WithRequestStart(ctx, start)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newRequestID(start time.Time) string {
	if id, err := uuid.NewV4(); err == nil {
		return id.String()
	}
	return "req_" + strconv.FormatInt(start.UnixNano(), 36)
}
