package middleware

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
)

// DefaultMaxBodyBytes caps request bodies. Every motivly payload is a small JSON document.
const DefaultMaxBodyBytes int64 = 1 << 20

// LimitAndDrainBody caps the request body at maxBytes, and after the handler
// is done drains whatever it left unread so the connection can be reused.
// A non positive maxBytes falls back to DefaultMaxBodyBytes.
func LimitAndDrainBody(maxBytes int64) mux.MiddlewareFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)

			// MaxBytesReader stops at the limit, so this never reads more than maxBytes
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		})
	}
}
