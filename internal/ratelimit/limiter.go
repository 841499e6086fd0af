// Package ratelimit bounds request volume per caller with node-local
// fixed-window counters. Counters live in process memory only, so quotas
// are enforced per instance; a horizontally scaled deployment needs a
// shared counter store (INCR + EXPIRE) instead.
package ratelimit

import (
	"sync"
	"time"
)

// Decision is the outcome of an Allow call. RetryAfter is the value to
// surface in the Retry-After header when blocking.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

type window struct {
	count   int
	startAt time.Time
}

// Limiter counts requests per key within a fixed window. Safe for
// concurrent use.
type Limiter struct {
	mu        sync.Mutex
	limit     int
	period    time.Duration
	windows   map[string]*window
	lastSweep time.Time

	now func() time.Time
}

func New(limit int, period time.Duration) *Limiter {
	return &Limiter{
		limit:     limit,
		period:    period,
		windows:   make(map[string]*window),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow records a request for key and reports whether it is within quota.
// The counter resets once the window has elapsed since the key's first
// recorded request.
func (l *Limiter) Allow(key string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	w, ok := l.windows[key]
	if !ok || now.Sub(w.startAt) >= l.period {
		l.windows[key] = &window{count: 1, startAt: now}
		return Decision{Allowed: true}
	}

	w.count++
	if w.count > l.limit {
		return Decision{
			Allowed:    false,
			RetryAfter: w.startAt.Add(l.period).Sub(now),
		}
	}
	return Decision{Allowed: true}
}

// sweep drops windows whose period has elapsed so the map does not grow
// with every client address the process ever saw. At most one pass per
// period. Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.period {
		return
	}
	for key, w := range l.windows {
		if now.Sub(w.startAt) >= l.period {
			delete(l.windows, key)
		}
	}
	l.lastSweep = now
}
