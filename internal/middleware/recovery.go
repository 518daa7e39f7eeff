package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/telemetry/metrics"
	"github.com/2beens/motivly/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a 500 JSON error and an error
// level log entry, which the sentry hook forwards.
func PanicRecovery(metricsManager *metrics.Manager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				// net/http uses this one to abort a response on purpose
				if err, ok := recovered.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(recovered)
				}

				fields := log.Fields{
					"method": req.Method,
					"path":   req.URL.Path,
				}
				if user, ok := session.UserFrom(req.Context()); ok {
					fields["user_id"] = user.ID
				}
				log.WithFields(fields).Errorf("handler panic: %v\n%s", recovered, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
