// Package requestid carries the per-request id through the context. The
// id surfaces as error_id in error envelopes so a reported failure can be
// matched against the logs.
package requestid

import "context"

type requestIDKeyType struct{}

var requestIDKey requestIDKeyType

// InjectRequestID stores the request id in the context.
func InjectRequestID(ctx context.Context, requestID uint64) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ExtractRequestID returns the request id from the context, or 0 when
// the middleware has not run.
func ExtractRequestID(ctx context.Context) uint64 {
	if v, ok := ctx.Value(requestIDKey).(uint64); ok {
		return v
	}
	return 0
}
