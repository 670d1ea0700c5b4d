package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mcoot/battleship-go2/internal/dependencies/clock"
)

// Logging creates middleware that logs every command with its outcome
func Logging(logger *slog.Logger, clk clock.Clock) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, command string, args []string) (bool, error) {
			start := clk.Now()

			quit, err := next(ctx, command, args)

			attrs := []slog.Attr{
				slog.String("command", command),
				slog.String("args", strings.Join(args, " ")),
				slog.Duration("duration", clk.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			logger.LogAttrs(ctx, slog.LevelDebug, "command handled", attrs...)

			return quit, err
		}
	}
}
