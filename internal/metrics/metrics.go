package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Site holds the counters reported by /api/stats.
type Site struct {
	started time.Time

	Requests     Counter
	PageViews    Counter
	APIRequests  Counter
	RateLimited  Counter
	NotFound     Counter
	ServerErrors Counter
	ThemeToggles Counter
}

func NewSite() *Site {
	return &Site{started: time.Now()}
}

type Snapshot struct {
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Requests      uint64 `json:"requests"`
	PageViews     uint64 `json:"pageViews"`
	APIRequests   uint64 `json:"apiRequests"`
	RateLimited   uint64 `json:"rateLimited"`
	NotFound      uint64 `json:"notFound"`
	ServerErrors  uint64 `json:"serverErrors"`
	ThemeToggles  uint64 `json:"themeToggles"`
}

func (s *Site) Snapshot() Snapshot {
	return Snapshot{
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
		Requests:      s.Requests.Load(),
		PageViews:     s.PageViews.Load(),
		APIRequests:   s.APIRequests.Load(),
		RateLimited:   s.RateLimited.Load(),
		NotFound:      s.NotFound.Load(),
		ServerErrors:  s.ServerErrors.Load(),
		ThemeToggles:  s.ThemeToggles.Load(),
	}
}
