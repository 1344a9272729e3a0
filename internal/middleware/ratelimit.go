package middleware

import (
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// RateLimiter caps the number of requests per client IP in a sliding window.
type RateLimiter struct {
	maxRequests int
	window      time.Duration
	now         func() time.Time

	mu       sync.Mutex
	requests map[string][]time.Time // IP -> request times
}

// NewRateLimiter allows maxRequests per client in every window.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		requests:    make(map[string][]time.Time),
	}
}

// Allow records a request from clientIP and reports whether it fits the window.
func (l *RateLimiter) Allow(clientIP string) bool {
	now := l.now()
	windowStart := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.requests[clientIP][:0]
	for _, ts := range l.requests[clientIP] {
		if ts.After(windowStart) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.maxRequests {
		l.requests[clientIP] = kept
		return false
	}
	l.requests[clientIP] = append(kept, now)
	return true
}

// Handler answers 429 once a client exceeds its budget.
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := getClientIP(r)
		if !l.Allow(clientIP) {
			log.WithFields(log.Fields{"remote_ip": clientIP, "path": r.URL.Path}).Warn("Rate limit exceeded")
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
