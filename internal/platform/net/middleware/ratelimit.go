package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	perr "marketwatch/internal/platform/errors"
	"marketwatch/internal/platform/logger"
	pnet "marketwatch/internal/platform/net"

	"golang.org/x/time/rate"
)

// RateLimitOptions configures the per client token bucket
type RateLimitOptions struct {
	// RPS is the sustained rate per client, 0 disables limiting
	RPS float64
	// Burst is the bucket size, defaults to 1 when RPS is set
	Burst int
	// Idle drops a client's bucket after this long without requests
	Idle time.Duration
	// now is a seam for tests
	now func() time.Time
}

type visitor struct {
	lim  *rate.Limiter
	seen time.Time
}

type limiterSet struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	opt      RateLimitOptions
	lastGC   time.Time
}

// RateLimit throttles requests per client ip with a token bucket
// rejected requests get a 429 envelope and a Retry-After header
func RateLimit(opt RateLimitOptions) func(http.Handler) http.Handler {
	if opt.RPS <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if opt.Burst < 1 {
		opt.Burst = 1
	}
	if opt.Idle <= 0 {
		opt.Idle = 3 * time.Minute
	}
	if opt.now == nil {
		opt.now = time.Now
	}
	set := &limiterSet{visitors: map[string]*visitor{}, opt: opt, lastGC: opt.now()}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if set.allow(clientKey(r)) {
				next.ServeHTTP(w, r)
				return
			}
			logger.C(r.Context()).Warn().
				Str("client", clientKey(r)).
				Str("path", r.URL.Path).
				Msg("rate limited")

			w.Header().Set("Retry-After", "1")
			pnet.Write(w, pnet.Failure(
				perr.New(perr.ErrorCodeTooManyRequests, "too many requests"),
				pnet.RequestID(r.Context()),
			))
		})
	}
}

func (s *limiterSet) allow(key string) bool {
	now := s.opt.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastGC) > s.opt.Idle {
		for k, v := range s.visitors {
			if now.Sub(v.seen) > s.opt.Idle {
				delete(s.visitors, k)
			}
		}
		s.lastGC = now
	}

	v, ok := s.visitors[key]
	if !ok {
		v = &visitor{lim: rate.NewLimiter(rate.Limit(s.opt.RPS), s.opt.Burst)}
		s.visitors[key] = v
	}
	v.seen = now
	return v.lim.AllowN(now, 1)
}

// clientKey is the remote ip without port, RealIP should run first
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
