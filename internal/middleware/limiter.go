package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const maxTrackedClients = 1000

// failureLimiter budgets failed logins per client key. Idle clients expire
// from the LRU after ttl.
type failureLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newFailureLimiter(perMin int, ttl time.Duration) *failureLimiter {
	burst := perMin / 2
	if burst < 1 {
		burst = 1
	}
	return &failureLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, ttl),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}

func (fl *failureLimiter) get(key string) *rate.Limiter {
	limiter, ok := fl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(fl.rate, fl.burst)
		fl.limiters.Add(key, limiter)
	}
	return limiter
}

// Blocked reports whether key has used up its failure budget.
func (fl *failureLimiter) Blocked(key string) bool {
	limiter, ok := fl.limiters.Peek(key)
	if !ok {
		return false
	}
	return limiter.Tokens() < 1
}

// RecordFailure spends one token for key.
func (fl *failureLimiter) RecordFailure(key string) {
	fl.get(key).Allow()
}
