package middleware

import (
	"net/http"
	"time"
)

const unmatchedRoute = "unmatched"

type httpObserver interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

// Metrics returns middleware that reports every request to obs, labelled
// with the mux pattern that served it.
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			obs.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
