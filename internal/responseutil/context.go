// Package responseutil lets middleware reach the response builder without
// importing the response package.
package responseutil

import (
	"context"
	"net/http"
)

// ErrorWriter writes an error in the API envelope
type ErrorWriter interface {
	WriteError(w http.ResponseWriter, r *http.Request, err error)
}

type contextKey string

const builderKey contextKey = "response_builder"

// GetErrorWriter extracts the error writer from the context, or nil
func GetErrorWriter(ctx context.Context) ErrorWriter {
	if ew, ok := ctx.Value(builderKey).(ErrorWriter); ok {
		return ew
	}
	return nil
}

// SetErrorWriter stores an error writer in the context
func SetErrorWriter(ctx context.Context, ew ErrorWriter) context.Context {
	return context.WithValue(ctx, builderKey, ew)
}
