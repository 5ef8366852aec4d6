package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultIdleTTL = 10 * time.Minute

// FrameLimiter throttles frames per key, normally the candidate's user ID.
//
//go:generate mockery --name=FrameLimiter --dir=. --output=./mocks --filename=frame_limiter_mock.go --case=underscore --with-expecter
type FrameLimiter interface {
	Allow(key string) bool
	Len() int
}

type Opts struct {
	IdleTTL      time.Duration
	TimeProvider func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type frameLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	now       func() time.Time
	entries   map[string]*entry
	lastSweep time.Time
}

// NewFrameLimiter allows framesPerSecond frames per key with the given burst.
// Keys idle for longer than the TTL are forgotten.
func NewFrameLimiter(framesPerSecond float64, burst int, opts *Opts) FrameLimiter {
	if burst <= 0 {
		burst = 1
	}
	l := &frameLimiter{
		limit:   rate.Limit(framesPerSecond),
		burst:   burst,
		idleTTL: defaultIdleTTL,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
	if framesPerSecond <= 0 {
		l.limit = rate.Inf
	}
	if opts != nil {
		if opts.IdleTTL > 0 {
			l.idleTTL = opts.IdleTTL
		}
		if opts.TimeProvider != nil {
			l.now = opts.TimeProvider
		}
	}
	l.lastSweep = l.now()
	return l
}

func (l *frameLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (l *frameLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *frameLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	for key, e := range l.entries {
		if now.Sub(e.lastSeen) > l.idleTTL {
			delete(l.entries, key)
		}
	}
	l.lastSweep = now
}
