// file: internal/handlers/api/v1/common/request.go
package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"jobtrust/internal/services"
)

// AdminMiddleware wraps handlers that only moderators may call
type AdminMiddleware func(http.Handler) http.Handler

// DecodeJSON reads a single JSON object from the request body into dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return services.NewValidationError("request body is required", nil)
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return services.NewValidationError("request body is required", err)
		case errors.As(err, &maxErr):
			return services.NewValidationError("request body too large", err)
		default:
			return services.NewValidationError("invalid request body", err)
		}
	}
	if dec.More() {
		return services.NewValidationError("request body must contain a single JSON object", nil)
	}
	return nil
}

// PathParam returns a trimmed mux route variable
func PathParam(r *http.Request, name string) string {
	return strings.TrimSpace(mux.Vars(r)[name])
}

// QueryParam returns a trimmed query value
func QueryParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// QueryInt parses an optional integer query value. Missing values yield
// zero so services can apply their defaults.
func QueryInt(r *http.Request, name string) (int, error) {
	raw := QueryParam(r, name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, services.NewDetailedValidationError("invalid query parameter", []services.FieldError{{
			Field:   name,
			Value:   raw,
			Message: name + " must be an integer",
			Code:    "INVALID_FORMAT",
		}})
	}
	return v, nil
}
