package middleware

import "context"

// Handler runs one interactive command and reports whether the session should end
type Handler func(ctx context.Context, command string, args []string) (quit bool, err error)

// Middleware wraps a Handler
type Middleware func(Handler) Handler

// Chain applies middlewares so the first one listed runs outermost
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
