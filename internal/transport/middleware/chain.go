package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so that Chain(a, b)(h) == a(b(h)): the first
// middleware sees the request first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Standard is the chain every service mounts in front of its router.
// Metrics stays innermost so it sees the route pattern set by the mux.
func Standard(recovery, logger, cors, metrics Middleware) Middleware {
	return Chain(recovery, RequestID(), logger, cors, metrics)
}
