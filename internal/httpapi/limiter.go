package httpapi

import (
	"sync"

	"golang.org/x/time/rate"
)

// UserLimiter rate-limits per user id (or remote address for anonymous
// callers).
type UserLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

// NewUserLimiter allows perMinute events per key with the given burst. A
// non-positive rate disables limiting.
func NewUserLimiter(perMinute float64, burst int) *UserLimiter {
	ul := &UserLimiter{m: make(map[string]*rate.Limiter)}
	ul.Update(perMinute, burst)
	return ul
}

// Update applies new limits; existing buckets are dropped.
func (ul *UserLimiter) Update(perMinute float64, burst int) {
	ul.mu.Lock()
	defer ul.mu.Unlock()
	if perMinute <= 0 {
		ul.r = rate.Inf
	} else {
		ul.r = rate.Limit(perMinute / 60)
	}
	if burst < 1 {
		burst = 1
	}
	ul.b = burst
	ul.m = make(map[string]*rate.Limiter)
}

func (ul *UserLimiter) limiterFor(key string) *rate.Limiter {
	ul.mu.Lock()
	defer ul.mu.Unlock()

	if lim, ok := ul.m[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(ul.r, ul.b)
	ul.m[key] = lim
	return lim
}

func (ul *UserLimiter) Allow(key string) bool {
	if key == "" {
		key = "_"
	}
	return ul.limiterFor(key).Allow()
}
