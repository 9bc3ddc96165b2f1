package middleware

import "net/http"

// Chain applies middleware in order (first to last):
//
//	handler := Chain(mux, RequestID, RequestLogging)
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	// Apply in reverse so they execute in the order provided
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
