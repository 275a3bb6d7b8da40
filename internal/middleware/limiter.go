package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"artgie-web/internal/logger"
	"artgie-web/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Tier multipliers relative to the configured base rate.
const (
	pagesFactor  = 2  // every filter click is a POST
	apiFactor    = 1  // JSON API
	assetsFactor = 10 // hero image and health checks

	visitorIdle = 3 * time.Minute
)

type tier struct {
	name  string
	limit rate.Limit
	burst int
}

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client and tier.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	base     rate.Limit
	burst    int
	stats    *metrics.Site

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewRateLimiter(rps float64, burst int, stats *metrics.Site) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		base:     rate.Limit(rps),
		burst:    burst,
		stats:    stats,
		stop:     make(chan struct{}),
	}
}

// getVisitor retrieves or creates a rate limiter for the given key.
func (l *RateLimiter) getVisitor(key string, t tier) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(t.limit, t.burst)
		l.visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// Cleanup removes visitors idle longer than maxIdle.
func (l *RateLimiter) Cleanup(maxIdle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, v := range l.visitors {
		if time.Since(v.lastSeen) > maxIdle {
			delete(l.visitors, key)
			removed++
		}
	}
	return removed
}

// StartCleanup sweeps idle visitors every interval until Stop.
func (l *RateLimiter) StartCleanup(interval time.Duration) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				l.Cleanup(visitorIdle)
			case <-l.stop:
				return
			}
		}
	}()
}

func (l *RateLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
	l.wg.Wait()
}

// Middleware rejects requests over the client's quota with 429.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := l.resolveTier(r)
		key := clientIdentity(r) + ":" + t.name

		if !l.getVisitor(key, t).Allow() {
			if l.stats != nil {
				l.stats.RateLimited.Inc()
			}
			logger.FromCtx(r.Context()).Warn("rate limited",
				zap.String("key", key),
				zap.String("path", r.URL.Path),
			)
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// resolveTier determines which rate limit policy applies to the request.
func (l *RateLimiter) resolveTier(r *http.Request) tier {
	switch {
	case strings.HasPrefix(r.URL.Path, "/api/"):
		return tier{"api", l.base * apiFactor, l.burst * apiFactor}
	case strings.HasSuffix(r.URL.Path, ".jpg") || r.URL.Path == "/health":
		return tier{"assets", l.base * assetsFactor, l.burst * assetsFactor}
	default:
		return tier{"pages", l.base * pagesFactor, l.burst * pagesFactor}
	}
}

// clientIdentity keys buckets on the remote IP. Request headers are client
// controlled and never select a bucket.
func clientIdentity(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}
