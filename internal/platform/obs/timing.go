package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a context carrying the request id used in timing logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time starts timing op; call the returned func with a pointer to the
// operation's error to log the duration and record it as a pipeline step.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		var err error
		if errp != nil {
			err = *errp
		}
		observeStep(name, err, dur)

		if err != nil {
			slog.WarnContext(ctx, "step failed", "req_id", reqID, "op", name, "dur_ms", dur.Milliseconds(), "err", err)
			return
		}
		slog.DebugContext(ctx, "step done", "req_id", reqID, "op", name, "dur_ms", dur.Milliseconds())
	}
}
