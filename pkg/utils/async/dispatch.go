package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a goroutine detached from the caller's
// cancellation. The request that triggered the work may complete before the
// handler does (audit logging after the response is written), so the handler
// gets a background context that keeps only the logger. Panics are recovered
// and logged, never propagated.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	detached := detach(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(detached).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(detached); err != nil {
			ctxlog.From(detached).Error("error in async handler", "error", err)
		}
	}()
}

// detach returns a background context carrying the caller's logger.
func detach(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
