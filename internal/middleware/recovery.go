package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/plainsite/internal/telemetry/metrics"
	"github.com/2beens/plainsite/pkg"

	log "github.com/sirupsen/logrus"
)

const panicResponseBody = "Page not found"

// PanicRecovery keeps a panicking handler from taking the server down.
// If the handler did not write anything yet, the client gets the generic 404.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			resp := newResponseWriter(respWriter)
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}
					log.Errorf("http: panic serving %s: %v\n%s", req.URL.Path, r, debug.Stack())
					if metricsManager != nil {
						metricsManager.CounterHandleRequestPanic.Inc()
					}
					if !resp.wroteHeader {
						pkg.WriteResponse(resp, pkg.ContentType.Text, panicResponseBody, http.StatusNotFound)
					}
				}
			}()

			// handler call
			next.ServeHTTP(resp, req)
		})
	}
}
