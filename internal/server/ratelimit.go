package server

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/conneroisu/prettytext/internal/errors"
	"github.com/conneroisu/prettytext/internal/logging"
)

// RateLimitConfig bounds API requests per client address.
type RateLimitConfig struct {
	RequestsPerMinute int
	BurstSize         int
	Enabled           bool
}

// DefaultRateLimitConfig allows short bursts of previews from an editor.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{RequestsPerMinute: 600, BurstSize: 60, Enabled: true}
}

// RateLimiter implements token bucket rate limiting keyed by client address.
type RateLimiter struct {
	buckets     map[string]*TokenBucket
	bucketMutex sync.Mutex
	config      RateLimitConfig
	logger      logging.Logger
	now         func() time.Time
}

// TokenBucket holds the tokens of one client.
type TokenBucket struct {
	tokens     float64
	lastRefill time.Time
}

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// NewRateLimiter creates a rate limiter. Non-positive limits fall back to
// the defaults.
func NewRateLimiter(config RateLimitConfig, logger logging.Logger) *RateLimiter {
	def := DefaultRateLimitConfig()
	if config.RequestsPerMinute <= 0 {
		config.RequestsPerMinute = def.RequestsPerMinute
	}
	if config.BurstSize <= 0 {
		config.BurstSize = def.BurstSize
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &RateLimiter{
		buckets: make(map[string]*TokenBucket),
		config:  config,
		logger:  logger.WithComponent("ratelimit"),
		now:     time.Now,
	}
}

// Check consumes a token for key if one is available.
func (rl *RateLimiter) Check(key string) RateLimitResult {
	if !rl.config.Enabled {
		return RateLimitResult{Allowed: true, Remaining: rl.config.BurstSize}
	}

	rl.bucketMutex.Lock()
	defer rl.bucketMutex.Unlock()

	now := rl.now()
	bucket, ok := rl.buckets[key]
	if !ok {
		bucket = &TokenBucket{tokens: float64(rl.config.BurstSize), lastRefill: now}
		rl.buckets[key] = bucket
		rl.evictIdle(now)
	}

	perSecond := float64(rl.config.RequestsPerMinute) / 60
	bucket.tokens += now.Sub(bucket.lastRefill).Seconds() * perSecond
	if capacity := float64(rl.config.BurstSize); bucket.tokens > capacity {
		bucket.tokens = capacity
	}
	bucket.lastRefill = now

	if bucket.tokens >= 1 {
		bucket.tokens--
		return RateLimitResult{Allowed: true, Remaining: int(bucket.tokens)}
	}
	wait := time.Duration((1 - bucket.tokens) / perSecond * float64(time.Second))
	return RateLimitResult{RetryAfter: wait}
}

// evictIdle drops buckets that have refilled completely, since a fresh
// bucket would be identical.
func (rl *RateLimiter) evictIdle(now time.Time) {
	full := time.Duration(float64(rl.config.BurstSize) / float64(rl.config.RequestsPerMinute) * float64(time.Minute))
	for key, bucket := range rl.buckets {
		if now.Sub(bucket.lastRefill) > full {
			delete(rl.buckets, key)
		}
	}
}

// Buckets returns the number of tracked clients.
func (rl *RateLimiter) Buckets() int {
	rl.bucketMutex.Lock()
	defer rl.bucketMutex.Unlock()
	return len(rl.buckets)
}

// RateLimitMiddleware creates HTTP middleware for rate limiting
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r)
			result := limiter.Check(clientIP)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.config.RequestsPerMinute))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

			if !result.Allowed {
				retry := int(result.RetryAfter.Seconds() + 0.999)
				if retry < 1 {
					retry = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				limiter.logger.Warn(r.Context(),
					errors.NewValidationError(errors.ErrCodeRateLimited, "rate limit exceeded"),
					"Rate limit exceeded",
					"client_ip", clientIP,
					"path", r.URL.Path)
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP is the remote host without its port. Forwarding headers are
// ignored because the preview server is not meant to sit behind a proxy.
func getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
