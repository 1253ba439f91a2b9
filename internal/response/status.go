package response

import (
	"net/http"
	"strings"

	"jobtrust/internal/services"
)

// WriteNotFound writes a 404 for unmatched routes
func (b *Builder) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	b.WriteError(w, r, services.NewNotFoundError("The requested resource was not found").
		WithDetail("path", r.URL.Path))
}

// WriteMethodNotAllowed writes a 405 listing the allowed methods
func (b *Builder) WriteMethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed []string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	err := &services.ServiceError{
		Type:       "METHOD_NOT_ALLOWED",
		Message:    "Method " + r.Method + " is not allowed on this resource",
		StatusCode: http.StatusMethodNotAllowed,
	}
	b.WriteError(w, r, err)
}

// WriteHealth writes a health report with 200 when usable and 503 otherwise
func (b *Builder) WriteHealth(w http.ResponseWriter, r *http.Request, health *services.ServiceHealth) {
	status := http.StatusOK
	if health.Status == services.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	resp := b.Success(r.Context(), health)
	resp.Success = status == http.StatusOK
	b.WriteJSON(w, r, resp, status)
}
