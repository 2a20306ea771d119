package middleware

import (
	"net/http"
	"slices"
)

// ForMethods applies mw only to requests whose method is listed. Other
// requests skip it entirely.
func ForMethods(mw func(http.Handler) http.Handler, methods ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapped := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(methods, r.Method) {
				wrapped.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
