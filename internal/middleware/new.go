package middleware

import (
	"time"

	"todo-web/config"
	"todo-web/pkg/log"
)

type Middleware struct {
	l        log.Logger
	auth     config.AuthConfig
	failures *failureLimiter
}

// New builds the middleware set. A nil failure limiter means throttling is off.
func New(l log.Logger, authCfg config.AuthConfig) Middleware {
	mw := Middleware{
		l:    l,
		auth: authCfg,
	}
	if authCfg.MaxFailuresPerMin > 0 {
		mw.failures = newFailureLimiter(authCfg.MaxFailuresPerMin, failureLimiterTTL)
	}
	return mw
}

const failureLimiterTTL = 10 * time.Minute
