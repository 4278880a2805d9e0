package util

import (
	"context"
)

type contextKey string

const verboseKey contextKey = "verbose"

// WithVerbose returns a context carrying the verbose flag. Runner internals
// consult it instead of threading a flag through every call.
func WithVerbose(ctx context.Context, verbose bool) context.Context {
	return context.WithValue(ctx, verboseKey, verbose)
}

// IsVerbose reports whether verbose mode was enabled on the context.
func IsVerbose(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, ok := ctx.Value(verboseKey).(bool)
	return ok && v
}
