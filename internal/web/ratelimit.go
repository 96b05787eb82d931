package web

import (
	"net/http"
	"sync"

	"bitbucket.org/crgw/accessibility-hub/internal/tools/responding"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterSet struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rps      float64
	burst    int
}

func (s *limiterSet) get(key string) *rate.Limiter {
	s.mu.RLock()
	limiter, exists := s.limiters[key]
	s.mu.RUnlock()

	if exists {
		return limiter
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if limiter, exists = s.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(s.rps), s.burst)
	s.limiters[key] = limiter

	return limiter
}

// RateLimit applies a token-bucket limit per extraction provider, so one
// chatty integration cannot starve the others. Requests outside the
// provider routes share a single bucket.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	set := &limiterSet{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}

	return func(c *gin.Context) {
		key := c.Param("provider")
		if key == "" {
			key = "shared"
		}

		if !set.get(key).Allow() {
			responding.HandleError(c, http.StatusTooManyRequests, "Rate limit exceeded", nil)
			c.Abort()
		}
	}
}
