package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"todo-web/internal/model"
	"todo-web/pkg/response"
)

const scopeKey = "scope"

// Auth gates a route behind the configured HTTP Basic credential.
// Missing or wrong credentials get 401 with a Basic challenge; the handler
// does not run. A client over its failure budget gets 429 when it presents a
// credential, a request without one is always challenged.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		client := c.ClientIP()

		username, password, ok := c.Request.BasicAuth()
		if !ok {
			response.Unauthorized(c, m.auth.Realm)
			return
		}

		// Only clients presenting a credential are throttled.
		if m.failures != nil && m.failures.Blocked(client) {
			m.l.Warnf(ctx, "middleware.Auth: client %s throttled after repeated failures", client)
			response.TooManyRequests(c)
			return
		}

		if !m.credentialsMatch(username, password) {
			if m.failures != nil {
				m.failures.RecordFailure(client)
			}
			m.l.Warnf(ctx, "middleware.Auth: invalid credentials for user %q from %s", username, client)
			response.Unauthorized(c, m.auth.Realm)
			return
		}

		c.Set(scopeKey, model.Scope{Username: username})
		c.Next()
	}
}

func (m Middleware) credentialsMatch(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.auth.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.auth.Password)) == 1
	return userOK && passOK
}

// GetScope returns the scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
