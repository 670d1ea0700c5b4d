package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// ErrPanic is returned in place of a panic raised while handling a command
var ErrPanic = errors.New("internal error")

// Recovery creates middleware that turns panics into ErrPanic so a bad
// command does not end the session
func Recovery(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, command string, args []string) (quit bool, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						slog.Any("error", r),
						slog.String("stack", string(debug.Stack())),
						slog.String("command", command),
					)
					quit, err = false, fmt.Errorf("%w: %v", ErrPanic, r)
				}
			}()

			return next(ctx, command, args)
		}
	}
}
