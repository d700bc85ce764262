package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"golang.org/x/time/rate"
)

// RateLimiter throttles per client IP and temporarily blocks addresses
// that keep hammering past their limit. The heavier schedule mutation
// endpoints get one of these on top of the global per-IP limit.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
}

func NewRateLimiter(rps int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  rps,
		per:       per,
		blockTime: blockTime,
	}
}

func (m *Middlewares) MutationRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !m.mutationLimiter.allow(ip) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests())
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()

	if blockedUntil, found := r.blocked[ip]; found {
		if time.Now().Before(blockedUntil) {
			r.mu.Unlock()
			return false
		}

		delete(r.blocked, ip)
	}

	limiter, exists := r.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
		r.limiters[ip] = limiter
	}

	r.mu.Unlock()

	if !limiter.Allow() {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.blocked[ip] = time.Now().Add(r.blockTime)
		return false
	}

	return true
}
