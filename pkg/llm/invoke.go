package llm

import (
	"context"
	"time"
)

// Invocation captures one completion attempt against one model. Latency is
// always recorded, even when the call failed.
type Invocation struct {
	Response  string
	LatencyMs int64
	Err       error
}

// Invoke issues a single completion call and measures wall-clock time from
// call start to response receipt or error. A positive timeout bounds the
// call; expiry surfaces as an error like any other invocation failure.
// Exactly one attempt is made; retrying is the completer's business, not ours.
func Invoke(ctx context.Context, completer Completer, model, prompt string, timeout time.Duration) Invocation {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	response, err := completer.Complete(ctx, model, prompt)
	latency := time.Since(start).Milliseconds()

	return Invocation{
		Response:  response,
		LatencyMs: latency,
		Err:       err,
	}
}
