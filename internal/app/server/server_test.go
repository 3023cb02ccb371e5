package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/config"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/handler"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/metrics"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/middleware"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/auth"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/classifier"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/llm"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/repository/repotest"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/seed"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"
)

type staticCompleter string

func (s staticCompleter) Complete(context.Context, []llm.Message) (string, error) {
	return string(s), nil
}

func newHandler(t *testing.T, reply string) *handler.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repotest.NewSQLite(t)
	_, err := seed.NewLoader(repo, taxonomy.Data).Load(context.Background())
	require.NoError(t, err)

	return handler.NewHandler(repo, classifier.New(staticCompleter(reply)))
}

func newRouter(t *testing.T, jwtSvc *auth.JWTService) *gin.Engine {
	t.Helper()
	return NewRouter(newHandler(t, "elimination"), metrics.New(), jwtSvc, "../../../templates/*", "../../../resources")
}

// closedPort returns a local port nothing listens on.
func closedPort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter_RoutesAndMetrics(t *testing.T) {
	r := newRouter(t, nil)

	w := serve(r, http.MethodGet, "/api/symptoms?category=Pricing")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = serve(r, http.MethodGet, "/static/chat.js")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `triage_http_requests_total{code="200",method="GET",route="/api/symptoms"} 1`)
}

func TestNewRouter_AdminOnlyWithSecret(t *testing.T) {
	w := serve(newRouter(t, nil), http.MethodPost, "/api/admin/reseed")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(newRouter(t, auth.NewJWTService("s", time.Hour)), http.MethodPost, "/api/admin/reseed")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEnableSessions_UnreachableRedis(t *testing.T) {
	h := newHandler(t, `{"final_category":"Pricing","explanation":"wrong price"}`)

	store := enableSessions(h, config.RedisConfig{Host: "127.0.0.1", Port: closedPort(t), SessionTTL: time.Hour})
	assert.Nil(t, store)
	assert.Nil(t, h.Sessions)

	r := NewRouter(h, metrics.New(), nil, "../../../templates/*", "../../../resources")
	req := httptest.NewRequest(http.MethodPost, "/api/categorize", strings.NewReader(`{"description":"the price is wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"final_category":"Pricing"`)
	assert.NotContains(t, w.Body.String(), "session_id")
}

func TestEnableSessions_NotConfigured(t *testing.T) {
	h := newHandler(t, "elimination")
	assert.Nil(t, enableSessions(h, config.RedisConfig{}))
	assert.Nil(t, h.Sessions)
}
