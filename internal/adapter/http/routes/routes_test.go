package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autoservice/internal/adapter/http/handlers/mocks"
	"autoservice/internal/domain/entities"
	"autoservice/internal/infrastructure/auth"
	"autoservice/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type fakeTokens map[string]auth.Identity

func (f fakeTokens) Parse(token string) (auth.Identity, error) {
	if id, ok := f[token]; ok {
		return id, nil
	}
	return auth.Identity{}, errors.New("bad token")
}

func newTestDeps(t *testing.T) (*Dependencies, *mocks.MockIServiceRequestUseCase, *mocks.MockIWorkerUseCase) {
	ctrl := gomock.NewController(t)
	requests := mocks.NewMockIServiceRequestUseCase(ctrl)
	workers := mocks.NewMockIWorkerUseCase(ctrl)
	return &Dependencies{
		Config:      &config.Config{CORSOrigins: []string{"*"}},
		Tokens:      fakeTokens{"worker": {UserID: "w1", Role: entities.RoleWorker}},
		OTP:         mocks.NewMockIOTPUseCase(ctrl),
		Workers:     workers,
		Requests:    requests,
		Ledger:      mocks.NewMockILedgerUseCase(ctrl),
		Diagnostics: mocks.NewMockIDiagnosticUseCase(ctrl),
		Archive:     mocks.NewMockIArchiveUseCase(ctrl),
	}, requests, workers
}

func serve(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ping", func(t *testing.T) {
		deps, _, _ := newTestDeps(t)
		r := NewRouter(deps)
		if w := serve(r, http.MethodGet, "/v1/ping", "", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		deps, _, _ := newTestDeps(t)
		r := NewRouter(deps)
		if w := serve(r, http.MethodGet, "/metrics", "", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("listing requests needs a token", func(t *testing.T) {
		deps, _, _ := newTestDeps(t)
		r := NewRouter(deps)
		if w := serve(r, http.MethodGet, "/v1/requests", "", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("customer form is public", func(t *testing.T) {
		deps, requests, _ := newTestDeps(t)
		requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusNew}, nil)

		r := NewRouter(deps)
		body := `{"customer_name":"Иван","car_model":"Lada","issue":"Шум","start_date_time":"2030-01-01T10:00:00Z"}`
		if w := serve(r, http.MethodPost, "/v1/requests", body, ""); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("workers cannot manage the registry", func(t *testing.T) {
		deps, _, _ := newTestDeps(t)
		r := NewRouter(deps)
		if w := serve(r, http.MethodDelete, "/v1/workers/w2", "", "worker"); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if w := serve(r, http.MethodGet, "/v1/transactions", "", "worker"); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("worker lists the registry", func(t *testing.T) {
		deps, _, workers := newTestDeps(t)
		workers.EXPECT().List(gomock.Any()).Return([]entities.Worker{{ID: "w1"}}, nil)

		r := NewRouter(deps)
		if w := serve(r, http.MethodGet, "/v1/workers", "", "worker"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig(&config.Config{CORSOrigins: []string{"*"}})
	if !all.AllowAllOrigins || all.AllowCredentials {
		t.Fatalf("expected wildcard without credentials, got %+v", all)
	}

	listed := corsConfig(&config.Config{CORSOrigins: []string{"https://shop.example"}})
	if listed.AllowAllOrigins || len(listed.AllowOrigins) != 1 || !listed.AllowCredentials {
		t.Fatalf("unexpected config: %+v", listed)
	}
}
