package theme

import (
	"context"
	"sync"
	"time"
)

// Context is the theme state of one browser session. Independent instances
// never share state.
type Context struct {
	mu       sync.Mutex
	theme    Theme
	lastSeen time.Time

	// persist runs once, on the first Toggle of a context not yet stored.
	persist func(*Context)
}

func NewContext(initial Theme) *Context {
	return &Context{theme: Parse(string(initial)), lastSeen: time.Now()}
}

func (c *Context) Theme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// Toggle flips the theme and returns the new value.
func (c *Context) Toggle() Theme {
	c.mu.Lock()
	c.theme = c.theme.Toggle()
	next := c.theme
	persist := c.persist
	c.persist = nil
	c.mu.Unlock()

	if persist != nil {
		persist(c)
	}
	return next
}

func (c *Context) touch(now time.Time) {
	c.mu.Lock()
	c.lastSeen = now
	c.mu.Unlock()
}

func (c *Context) idleSince(now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return now.Sub(c.lastSeen)
}

type ctxKey struct{}

func WithContext(ctx context.Context, tc *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, tc)
}

// FromContext returns the request's theme context, or a fresh light one
// when none was attached.
func FromContext(ctx context.Context) *Context {
	if tc, ok := ctx.Value(ctxKey{}).(*Context); ok && tc != nil {
		return tc
	}
	return NewContext(Light)
}
