package middlewares

import (
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter gives each client IP a bucket of attempts that refills over
// the window. An IP that empties its bucket is refused until the block time
// has passed.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	attempts  int
	window    time.Duration
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(log *zap.Logger, attempts int, window, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		log:       log,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		attempts:  attempts,
		window:    window,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		now := rl.now()
		blockedUntil, allowed := rl.allow(ip, now)
		if !allowed {
			utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(nil, ip, blockedUntil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string, now time.Time) (time.Time, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if blockedUntil, found := rl.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return blockedUntil, false
		}
		delete(rl.blocked, ip)
		delete(rl.limiters, ip)
	}

	limiter, exists := rl.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(rl.window/time.Duration(rl.attempts)), rl.attempts)
		rl.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		blockedUntil := now.Add(rl.blockTime)
		rl.blocked[ip] = blockedUntil
		return blockedUntil, false
	}
	return time.Time{}, true
}
