package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoservice/internal/domain/entities"
	"autoservice/internal/infrastructure/auth"
	"autoservice/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type stubParser map[string]auth.Identity

func (s stubParser) Parse(token string) (auth.Identity, error) {
	id, ok := s[token]
	if !ok {
		return auth.Identity{}, errors.New("bad token")
	}
	return id, nil
}

var parser = stubParser{
	"admin":  {UserID: "admin-1", Role: entities.RoleAdmin},
	"worker": {UserID: "w1", Role: entities.RoleWorker},
	"norole": {UserID: "u1", Role: entities.RoleNone},
}

func newRouter() *gin.Engine {
	r := gin.New()
	authed := r.Group("/", Authenticate(parser))
	authed.GET("/me", func(c *gin.Context) {
		id, _ := IdentityFrom(c)
		c.String(http.StatusOK, id.UserID)
	})
	authed.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
	authed.GET("/workers/:id/ledger", RequireSelfOrAdmin("id"), func(c *gin.Context) { c.Status(http.StatusOK) })
	authed.POST("/workers/:id/ledger", RequireSelf("id"), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func do(r http.Handler, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRouter()

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"missing token", http.MethodGet, "/me", "", http.StatusUnauthorized},
		{"invalid token", http.MethodGet, "/me", "forged", http.StatusUnauthorized},
		{"valid token", http.MethodGet, "/me", "worker", http.StatusOK},
		{"worker is not admin", http.MethodGet, "/admin", "worker", http.StatusForbidden},
		{"unknown role is not elevated", http.MethodGet, "/admin", "norole", http.StatusForbidden},
		{"admin", http.MethodGet, "/admin", "admin", http.StatusOK},
		{"worker reads own ledger", http.MethodGet, "/workers/w1/ledger", "worker", http.StatusOK},
		{"worker reads other ledger", http.MethodGet, "/workers/w2/ledger", "worker", http.StatusForbidden},
		{"admin reads any ledger", http.MethodGet, "/workers/w2/ledger", "admin", http.StatusOK},
		{"worker writes own ledger", http.MethodPost, "/workers/w1/ledger", "worker", http.StatusOK},
		{"admin cannot write worker ledger", http.MethodPost, "/workers/w1/ledger", "admin", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := do(r, tc.method, tc.path, tc.token); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Prometheus())
	r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/v1/ping", "200")
	before := testutil.ToFloat64(counter)
	do(r, http.MethodGet, "/v1/ping", "")
	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}

	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "undefined", "404")
	before = testutil.ToFloat64(unmatched)
	do(r, http.MethodGet, "/nope", "")
	if got := testutil.ToFloat64(unmatched); got != before+1 {
		t.Fatalf("expected unmatched route to be labelled undefined")
	}
}
