package rest

import "net/http"

// RouteRegistrar mounts a group of routes on a mux.
type RouteRegistrar interface {
	Register(mux *http.ServeMux)
}

// NewRouter builds the mux of one service: probes, /metrics and the given
// API route groups. A nil metrics handler leaves /metrics unmounted.
func NewRouter(health *HealthHandler, metrics http.Handler, groups ...RouteRegistrar) *http.ServeMux {
	mux := http.NewServeMux()

	health.Register(mux)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
	for _, g := range groups {
		g.Register(mux)
	}

	return mux
}
