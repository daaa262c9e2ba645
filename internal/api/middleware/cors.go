package middleware

import "net/http"

const allowedMethods = "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"

// CORS allows every origin, method and header. It wraps the router itself so
// preflight requests are answered even for paths with no OPTIONS route.
func CORS() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()
			header.Set("Access-Control-Allow-Origin", "*")
			header.Set("Access-Control-Expose-Headers", RequestIDHeader)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				header.Add("Vary", "Access-Control-Request-Headers")
				header.Set("Access-Control-Allow-Methods", allowedMethods)
				if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
					header.Set("Access-Control-Allow-Headers", requested)
				} else {
					header.Set("Access-Control-Allow-Headers", "*")
				}
				header.Set("Access-Control-Max-Age", "600")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
