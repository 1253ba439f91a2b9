// file: internal/middleware/security.go
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"jobtrust/internal/config"
)

// ===============================
// SECURITY HEADERS
// ===============================

// SecurityHeaders sets the static response hardening headers and caps
// request body size.
func SecurityHeaders(cfg config.SecurityConfig, production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if production {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			if cfg.MaxRequestBytes > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxRequestBytes)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ===============================
// CORS
// ===============================

// CORS applies the configured cross-origin policy. Disallowed origins get
// no CORS headers rather than an error.
func CORS(cfg config.SecurityConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	methods := strings.Join(cfg.CORSAllowedMethods, ", ")
	headers := strings.Join(cfg.CORSAllowedHeaders, ", ")
	maxAge := strconv.Itoa(int(cfg.CORSMaxAge.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")
			if !isOriginAllowed(origin, cfg.CORSAllowedOrigins) {
				GetRequestLogger(r).Debug("CORS origin rejected", zap.String("origin", origin))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, X-RateLimit-Limit, X-RateLimit-Remaining, Retry-After")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isOriginAllowed supports exact origins, "*" and "*.example.com" patterns
func isOriginAllowed(origin string, allowed []string) bool {
	for _, pattern := range allowed {
		switch {
		case pattern == "*", pattern == origin:
			return true
		case strings.HasPrefix(pattern, "*."):
			if strings.HasSuffix(origin, pattern[1:]) {
				return true
			}
		}
	}
	return false
}
