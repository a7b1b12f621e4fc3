package httpkit

import (
	"compress/flate"
	"net/http"
	"strings"
	"time"

	"marketwatch/internal/platform/net/middleware"
)

// Middleware is the net/http middleware shape
type Middleware = func(http.Handler) http.Handler

// StackOptions tunes CommonStack, zero values take the defaults
type StackOptions struct {
	Timeout     time.Duration // 30s
	SlowRequest time.Duration // 500ms
	Origins     []string      // CORS allow list, empty allows none
}

// CommonStack is the middleware every versioned API scope runs
// identity comes after RequestID so the access log carries both ids
func CommonStack(opt StackOptions) []Middleware {
	if opt.Timeout <= 0 {
		opt.Timeout = 30 * time.Second
	}
	if opt.SlowRequest <= 0 {
		opt.SlowRequest = 500 * time.Millisecond
	}
	return []Middleware{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.Identity,
		middleware.RecoverJSON,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: opt.SlowRequest}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: opt.Origins}),
		middleware.NoCache(),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(opt.Timeout),
	}
}

// Heartbeat answers path with a bare 200 before any routing
func Heartbeat(path string) Middleware { return middleware.Heartbeat(path) }

// Throttled returns a per client token bucket limiter, rps <= 0 disables it
func Throttled(rps float64, burst int) Middleware {
	return middleware.RateLimit(middleware.RateLimitOptions{RPS: rps, Burst: burst})
}

// MountVersion mounts /api/{version} with mws applied, then lets mount register routes on it
func MountVersion(r Router, version string, mws []Middleware, mount func(Router)) {
	r.Route("/api/"+strings.Trim(version, "/"), func(api Router) {
		api.Use(mws...)
		mount(api)
	})
}
