package theme

import (
	"net/http"
	"sync"
	"time"

	"artgie-web/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const CookieName = "artgie_session"

// Store keeps one theme Context per session in memory. Nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Context
	ttl      time.Duration
	now      func() time.Time

	stop      chan struct{}
	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Context),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Lookup returns the stored context for id without creating one.
func (s *Store) Lookup(id string) (*Context, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tc, ok := s.sessions[id]
	if ok {
		tc.touch(s.now())
	}
	return tc, ok
}

func (s *Store) put(id string, tc *Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tc.touch(s.now())
	s.sessions[id] = tc
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle longer than the TTL and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, tc := range s.sessions {
		if tc.idleSince(now) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until Stop is called.
func (s *Store) StartSweeper(interval time.Duration) {
	s.startOnce.Do(func() {
		s.mu.Lock()
		s.started = true
		s.mu.Unlock()
		go s.sweepLoop(interval)
	})
}

func (s *Store) sweepLoop(interval time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.L().Debug("expired theme sessions", zap.Int("removed", n))
			}
		case <-s.stop:
			return
		}
	}
}

// Stop ends the sweeper started by StartSweeper and waits for it to exit.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if started {
			<-s.done
		}
	})
}

// Middleware attaches the session's theme Context to the request. Visitors
// without a stored session get an unsaved light Context; it is stored, and
// the session cookie issued, only when it is first toggled.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(CookieName); err == nil {
			if _, perr := uuid.Parse(c.Value); perr == nil {
				id = c.Value
			}
		}

		if id != "" {
			if tc, ok := s.Lookup(id); ok {
				next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), tc)))
				return
			}
		}

		tc := NewContext(Light)
		tc.persist = func(tc *Context) {
			sid := id
			if sid == "" {
				sid = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			s.put(sid, tc)
		}
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), tc)))
	})
}
