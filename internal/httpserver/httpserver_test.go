package httpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-web/config"
	"todo-web/internal/todo/repository/jsonfile"
	"todo-web/pkg/log"
)

func newTestServer(t *testing.T, todoDir string, port int) *HTTPServer {
	t.Helper()
	l := log.NewNop()

	repo, err := jsonfile.New(todoDir, l)
	require.NoError(t, err)

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "style.css"), []byte("body{}"), 0o644))

	srv, err := New(l, Config{
		Logger:         l,
		Host:           "127.0.0.1",
		Port:           port,
		Mode:           gin.TestMode,
		Environment:    "test",
		StaticDir:      staticDir,
		TodoRepository: repo,
		Auth:           config.AuthConfig{Username: "user", Password: "pass", Realm: "todo-web"},
	})
	require.NoError(t, err)
	return srv
}

func serve(srv *HTTPServer, method, target string, auth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if auth {
		req.SetBasicAuth("user", "pass")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	l := log.NewNop()
	repo, err := jsonfile.New(t.TempDir(), l)
	require.NoError(t, err)

	base := Config{
		Port:           8000,
		Mode:           gin.TestMode,
		TodoRepository: repo,
		Auth:           config.AuthConfig{Username: "user", Password: "pass"},
	}

	_, err = New(l, base)
	assert.NoError(t, err)

	noAuth := base
	noAuth.Auth = config.AuthConfig{}
	_, err = New(l, noAuth)
	assert.Error(t, err)

	noRepo := base
	noRepo.TodoRepository = nil
	_, err = New(l, noRepo)
	assert.Error(t, err)

	_, err = New(nil, base)
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, t.TempDir(), 8000)

	for _, path := range []string{"/health", "/live", "/ready"} {
		w := serve(srv, http.MethodGet, path, false)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := serve(srv, http.MethodGet, "/static/style.css", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())
}

func TestReadyFailsWithoutTodoDir(t *testing.T) {
	srv := newTestServer(t, filepath.Join(t.TempDir(), "missing"), 8000)

	w := serve(srv, http.MethodGet, "/ready", false)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = serve(srv, http.MethodGet, "/", true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "missing")
}

func TestTodoRoutesMounted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.json"), []byte(`[{"task":"buy milk","done":false}]`), 0o644))
	srv := newTestServer(t, dir, 8000)

	w := serve(srv, http.MethodGet, "/", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(srv, http.MethodGet, "/todo/test.json", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "buy milk")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAuthThrottleKeysOnPeerAddress(t *testing.T) {
	l := log.NewNop()
	repo, err := jsonfile.New(t.TempDir(), l)
	require.NoError(t, err)

	srv, err := New(l, Config{
		Port:           8000,
		Mode:           gin.TestMode,
		TodoRepository: repo,
		Auth:           config.AuthConfig{Username: "user", Password: "pass", Realm: "todo-web", MaxFailuresPerMin: 4},
	})
	require.NoError(t, err)

	send := func(remote, forwarded, pass string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		req.Header.Set("X-Forwarded-For", forwarded)
		req.SetBasicAuth("user", pass)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		return w.Code
	}

	// An attacker claiming to be 10.0.0.1 spends only its own budget.
	for i := 0; i < 3; i++ {
		send("192.0.2.7:4000", "10.0.0.1", "bad")
	}
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.7:4000", "10.0.0.2", "pass"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234", "", "pass"))
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestRunShutsDownOnCancel(t *testing.T) {
	port := freePort(t)
	srv := newTestServer(t, t.TempDir(), port)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/live", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
