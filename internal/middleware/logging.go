package middleware

import (
	"net/http"

	"github.com/2beens/plainsite/pkg"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.WithFields(log.Fields{
				"ip": pkg.ReadUserIP(r),
				"ua": r.Header.Get("User-Agent"),
			}).Tracef(" ====> request [%s] path: [%s]", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}
