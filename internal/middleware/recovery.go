// file: internal/middleware/recovery.go
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"jobtrust/internal/services"
)

// Recovery turns a handler panic into a 500 envelope and logs the stack
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// net/http uses this sentinel to abort a response on purpose
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				GetRequestLogger(r).Error("Panic recovered",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)

				err := services.NewInternalError("An unexpected error occurred", fmt.Errorf("panic: %v", rec))
				writeError(w, r, err, http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
