package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ErrRateLimited is attached to requests rejected by RateLimiter.
var ErrRateLimited = errors.New("rate limit exceeded")

// DefaultRateLimit is the number of requests a client may make per window.
const DefaultRateLimit = 60

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitors holds one token bucket per client IP.
type visitors struct {
	mu    sync.Mutex
	every rate.Limit
	burst int
	idle  time.Duration
	byIP  map[string]*visitor
	swept time.Time
}

func (v *visitors) limiter(ip string, now time.Time) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	// a client idle for a whole window is back to a full bucket and can be forgotten
	if now.Sub(v.swept) > v.idle {
		for k, vis := range v.byIP {
			if now.Sub(vis.lastSeen) > v.idle {
				delete(v.byIP, k)
			}
		}
		v.swept = now
	}

	vis, ok := v.byIP[ip]
	if !ok {
		vis = &visitor{limiter: rate.NewLimiter(v.every, v.burst)}
		v.byIP[ip] = vis
	}
	vis.lastSeen = now
	return vis.limiter
}

func (v *visitors) size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.byIP)
}

// RateLimiter allows each client IP a burst of limit requests, refilled at limit per
// window. A non-positive limit falls back to DefaultRateLimit, a non-positive window
// to one minute.
//
// Every call returns an independent limiter; state is in memory and per process.
//
// Response when limit exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	Retry-After: 1
//	{"message": "Too many requests", "error": "rate limit exceeded", "timestamp": "..."}
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newVisitors(limit, window).handler()
}

func newVisitors(limit int, window time.Duration) *visitors {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if window <= 0 {
		window = time.Minute
	}
	return &visitors{
		every: rate.Every(window / time.Duration(limit)),
		burst: limit,
		idle:  window,
		byIP:  make(map[string]*visitor),
		swept: time.Now(),
	}
}

func (v *visitors) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		res := v.limiter(c.ClientIP(), now).ReserveN(now, 1)
		if delay := res.DelayFrom(now); !res.OK() || delay > 0 {
			res.CancelAt(now)
			c.Header("Retry-After", retryAfter(delay))
			AbortWithError(c, http.StatusTooManyRequests, "Too many requests", ErrRateLimited)
			return
		}

		c.Next()
	}
}

func retryAfter(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
