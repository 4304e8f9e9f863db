package pricing

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter caps outbound calls per provider with a token bucket holding
// perMinute tokens, refilled evenly over a minute. A fresh bucket starts full.
type Limiter struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewLimiter allows perMinute calls per provider per minute.
func NewLimiter(perMinute int) *Limiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return &Limiter{
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether a call to provider may be made now, consuming a token if so.
func (l *Limiter) Allow(provider string) bool {
	return l.bucket(provider).Allow()
}

func (l *Limiter) bucket(provider string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[provider]
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.buckets[provider] = b
	}
	return b
}
