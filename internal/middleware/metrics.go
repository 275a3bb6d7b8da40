package middleware

import (
	"net/http"
	"strings"

	"artgie-web/internal/metrics"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Count records every request in stats by kind and outcome.
func Count(stats *metrics.Site) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			stats.Requests.Inc()
			if strings.HasPrefix(r.URL.Path, "/api/") {
				stats.APIRequests.Inc()
			}
			switch {
			case sw.status == http.StatusNotFound:
				stats.NotFound.Inc()
			case sw.status >= http.StatusInternalServerError:
				stats.ServerErrors.Inc()
			}
		})
	}
}

// Chain applies mws so the first one is outermost.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
