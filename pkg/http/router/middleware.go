package router

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/navigatorx-tour/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// EnforceJSONHandler. POST/PUT bodies must be application/json.
func EnforceJSONHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			contentType := r.Header.Get("Content-Type")
			if contentType == "" || !strings.HasPrefix(strings.ToLower(contentType), "application/json") {
				http.Error(w, "Content-Type header must be application/json", http.StatusUnsupportedMediaType)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (api *API) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				api.log.Error("panic while serving request", zap.String("path", r.URL.Path),
					zap.String("panic", fmt.Sprint(err)), zap.Stack("stack"))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RealIP. set r.RemoteAddr from X-Real-IP or the first X-Forwarded-For address.
func RealIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := realIP(r); ip != "" {
			r.RemoteAddr = ip
		}
		next.ServeHTTP(w, r)
	})
}

func realIP(r *http.Request) string {
	var ip string
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		ip = xrip
	} else if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip, _, _ = strings.Cut(xff, ",")
	}
	ip = strings.TrimSpace(ip)
	if ip == "" || net.ParseIP(ip) == nil {
		return ""
	}
	return ip
}

// Heartbeat. answer GET/HEAD /endpoint with 200 "." without reaching the router.
func Heartbeat(endpoint string) func(http.Handler) http.Handler {
	endpoint = "/" + strings.TrimPrefix(endpoint, "/")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if (r.Method == http.MethodGet || r.Method == http.MethodHead) && strings.EqualFold(r.URL.Path, endpoint) {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

func Logger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Int("status", rec.status),
				zap.Int("bytes", rec.bytes),
				zap.Duration("elapsed", time.Since(start)))
		})
	}
}

const unmatchedRoute = "unmatched"

// routePattern. the registered pattern that serves r, e.g. /doc/*any. unmatchedRoute when no route does.
func routePattern(router *httprouter.Router, r *http.Request) string {
	handle, params, _ := router.Lookup(r.Method, r.URL.Path)
	if handle == nil {
		return unmatchedRoute
	}
	pattern := r.URL.Path
	for i := len(params) - 1; i >= 0; i-- {
		p := params[i]
		if strings.HasPrefix(p.Value, "/") && strings.HasSuffix(pattern, p.Value) {
			// catch-all, always the last segment
			pattern = strings.TrimSuffix(pattern, p.Value) + "/*" + p.Key
			continue
		}
		pattern = strings.Replace(pattern, "/"+p.Value, "/:"+p.Key, 1)
	}
	return pattern
}

// Metrics. request count and latency per method, route pattern and status.
func Metrics(m *metrics.SolverMetrics, router *httprouter.Router) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			m.ObserveHTTP(r.Method, routePattern(router, r), rec.status, time.Since(start))
		})
	}
}

// Labels. pprof labels for the goroutine serving the request.
func Labels(router *httprouter.Router) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			labels := pprof.Labels("method", r.Method, "path", routePattern(router, r))
			pprof.Do(r.Context(), labels, func(ctx context.Context) {
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		})
	}
}

// Limit. token bucket of rps requests per second shared by all clients.
func Limit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
