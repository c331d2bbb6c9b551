package httpapi

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultClientIdle is how long a client may stay quiet before its limiter
// is dropped.
const DefaultClientIdle = 10 * time.Minute

type clientEntry struct {
	lim  *rate.Limiter
	seen time.Time
}

// ClientLimiter rate-limits per client IP. Entries idle for longer than
// idle are swept lazily, at most once per idle period.
type ClientLimiter struct {
	mu        sync.Mutex
	m         map[string]*clientEntry
	r         rate.Limit
	b         int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewClientLimiter(reqPerSec float64, burst int) *ClientLimiter {
	return &ClientLimiter{
		m:    make(map[string]*clientEntry),
		r:    rate.Limit(reqPerSec),
		b:    burst,
		idle: DefaultClientIdle,
		now:  time.Now,
	}
}

func (cl *ClientLimiter) limiterFor(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.now()
	cl.sweep(now)

	if e, ok := cl.m[key]; ok {
		e.seen = now
		return e.lim
	}
	lim := rate.NewLimiter(cl.r, cl.b)
	cl.m[key] = &clientEntry{lim: lim, seen: now}
	return lim
}

// sweep must be called with mu held.
func (cl *ClientLimiter) sweep(now time.Time) {
	if now.Sub(cl.lastSweep) < cl.idle {
		return
	}
	cl.lastSweep = now
	for k, e := range cl.m {
		if now.Sub(e.seen) >= cl.idle {
			delete(cl.m, k)
		}
	}
}

// Len reports how many clients are currently tracked.
func (cl *ClientLimiter) Len() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.m)
}

func (cl *ClientLimiter) Allow(r *http.Request) bool {
	return cl.limiterFor(clientKey(r)).Allow()
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr can sometimes be just a host
		return r.RemoteAddr
	}
	return host
}
