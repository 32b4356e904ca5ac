package providers

import (
	"net/http"
	"time"
)

// unmatchedEndpoint labels requests no API route accepted, so probing
// unknown paths cannot grow the request series without bound.
const unmatchedEndpoint = "unmatched"

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// requestEndpoint is the route pattern the API mux matched, read back after
// the mux has served the request.
func requestEndpoint(r *http.Request) string {
	if r.Pattern == "" {
		return unmatchedEndpoint
	}
	return r.Pattern
}

// MetricsMiddleware wraps the API mux. It counts and times every tracker,
// notification and reminder request by route and writes one access line to
// the get or post log. Server errors go to the log at warn level.
func MetricsMiddleware(metrics MetricsProviderInterface, logger Logger, apiMux http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		apiMux.ServeHTTP(sw, r)

		duration := time.Since(start)
		endpoint := requestEndpoint(r)
		metrics.IncRequestsTotal(endpoint, sw.status)
		metrics.ObserveRequestDuration(endpoint, duration)

		logType := GetLogTypeByRequestType(r.Method)
		if sw.status >= http.StatusInternalServerError {
			logger.Warnf(logType, "%s %s %d %s", r.Method, r.URL.RequestURI(), sw.status, duration)
			return
		}
		logger.Debugf(logType, "%s %s %d %s", r.Method, r.URL.RequestURI(), sw.status, duration)
	})
}
