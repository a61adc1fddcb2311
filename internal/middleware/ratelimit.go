package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/metrics"
)

// idleLimiterTTL is how long an unused tenant limiter is kept.
const idleLimiterTTL = 10 * time.Minute

type tenantLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// TenantRateLimiter holds one token bucket per tenant.
type TenantRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*tenantLimiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewTenantRateLimiter allows perSecond requests per tenant with the given
// burst. A non-positive rate disables limiting.
func NewTenantRateLimiter(perSecond float64, burst int) *TenantRateLimiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &TenantRateLimiter{
		limiters: make(map[string]*tenantLimiter),
		limit:    limit,
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether the tenant may make a request now. When it may not,
// the returned duration is the wait before the next token.
func (l *TenantRateLimiter) Allow(tenantID string) (bool, time.Duration) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	tl, ok := l.limiters[tenantID]
	if !ok {
		l.evictIdle(now)
		tl = &tenantLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[tenantID] = tl
	}
	tl.lastSeen = now

	r := tl.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Second
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func (l *TenantRateLimiter) evictIdle(now time.Time) {
	for id, tl := range l.limiters {
		if now.Sub(tl.lastSeen) > idleLimiterTTL {
			delete(l.limiters, id)
		}
	}
}

// Middleware rejects requests over the tenant's budget with 429 and a
// Retry-After header. It must run after Tenant.
func (l *TenantRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, wait := l.Allow(GetTenantID(c))
		if !ok {
			metrics.HTTPRateLimited.WithLabelValues(c.FullPath()).Inc()
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many import submissions, retry later",
			})
			return
		}
		c.Next()
	}
}
