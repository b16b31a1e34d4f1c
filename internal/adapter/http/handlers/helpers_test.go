package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"

	"autoservice/internal/adapter/http/middleware"
	"autoservice/internal/domain/entities"
	"autoservice/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

type stubTokens map[string]auth.Identity

func (s stubTokens) Parse(token string) (auth.Identity, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return auth.Identity{}, errors.New("bad token")
}

var testTokens = stubTokens{
	"admin":  {UserID: "admin-1", Role: entities.RoleAdmin},
	"worker": {UserID: "w1", Role: entities.RoleWorker},
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withAuth(r *gin.Engine) *gin.RouterGroup {
	return r.Group("", middleware.Authenticate(testTokens))
}

func perform(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
