package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-web/config"
	"todo-web/pkg/log"
)

func newTestEngine(authCfg config.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), authCfg)

	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	r.Use(mw.Tracing())
	r.GET("/secret", mw.Auth(), func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			c.String(http.StatusInternalServerError, "no scope")
			return
		}
		c.String(http.StatusOK, "hello "+sc.Username)
	})
	return r
}

func doRequest(r http.Handler, user, pass string, withAuth bool) *httptest.ResponseRecorder {
	return doRequestFrom(r, "10.0.0.1:1234", "", user, pass, withAuth)
}

func doRequestFrom(r http.Handler, remoteAddr, forwardedFor, user, pass string, withAuth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	if withAuth {
		req.SetBasicAuth(user, pass)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	authCfg := config.AuthConfig{Username: "user", Password: "pass", Realm: "todo-web"}
	r := newTestEngine(authCfg)

	t.Run("no credentials", func(t *testing.T) {
		w := doRequest(r, "", "", false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, `Basic realm="todo-web"`, w.Header().Get("WWW-Authenticate"))
		assert.NotContains(t, w.Body.String(), "hello")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doRequest(r, "user", "nope", true)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")
	})

	t.Run("wrong username", func(t *testing.T) {
		w := doRequest(r, "admin", "pass", true)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("correct credentials expose username", func(t *testing.T) {
		w := doRequest(r, "user", "pass", true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hello user", w.Body.String())
	})
}

func TestAuthThrottlesRepeatedFailures(t *testing.T) {
	authCfg := config.AuthConfig{Username: "user", Password: "pass", Realm: "todo-web", MaxFailuresPerMin: 4}
	r := newTestEngine(authCfg)

	// burst is MaxFailuresPerMin/2
	for i := 0; i < 2; i++ {
		w := doRequest(r, "user", "bad", true)
		require.Equal(t, http.StatusUnauthorized, w.Code, "attempt %d", i)
	}

	w := doRequest(r, "user", "pass", true)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A throttled client without credentials is still challenged.
	w = doRequest(r, "", "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `Basic realm="todo-web"`, w.Header().Get("WWW-Authenticate"))

	// Missing credentials never count as a failure.
	fresh := newTestEngine(authCfg)
	for i := 0; i < 5; i++ {
		w := doRequest(fresh, "", "", false)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}
	w = doRequest(fresh, "user", "pass", true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthThrottleIgnoresForwardedFor(t *testing.T) {
	authCfg := config.AuthConfig{Username: "user", Password: "pass", Realm: "todo-web", MaxFailuresPerMin: 4}

	t.Run("rotating header does not reset the budget", func(t *testing.T) {
		r := newTestEngine(authCfg)
		for i := 0; i < 2; i++ {
			w := doRequestFrom(r, "192.0.2.7:4000", fmt.Sprintf("203.0.113.%d", i), "user", "bad", true)
			require.Equal(t, http.StatusUnauthorized, w.Code)
		}
		w := doRequestFrom(r, "192.0.2.7:4000", "203.0.113.99", "user", "bad", true)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("spoofed header does not lock out another client", func(t *testing.T) {
		r := newTestEngine(authCfg)
		for i := 0; i < 3; i++ {
			doRequestFrom(r, "192.0.2.7:4000", "10.0.0.1", "user", "bad", true)
		}
		w := doRequestFrom(r, "10.0.0.1:1234", "", "user", "pass", true)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestTracing(t *testing.T) {
	r := newTestEngine(config.AuthConfig{Username: "u", Password: "p", Realm: "r"})

	w := doRequest(r, "u", "p", true)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	req.SetBasicAuth("u", "p")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
}
