package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/config"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/metrics"
	"github.com/sangkips/gestao-api/internal/presentation/http/handler"
	"github.com/sangkips/gestao-api/pkg/utils"
	"go.uber.org/zap"
)

func newRouter(health func() error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		App:     config.AppConfig{Name: "gestao-api"},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	return Setup(&Handlers{Money: handler.NewMoneyHandler()}, &Deps{
		JWTManager:  utils.NewJWTManager("test-secret", time.Hour, time.Hour),
		Cfg:         cfg,
		Metrics:     metrics.New(),
		Log:         zap.NewNop(),
		HealthCheck: health,
	})
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		health func() error
		want   int
	}{
		{"database up", func() error { return nil }, http.StatusOK},
		{"database down", func() error { return errors.New("connection refused") }, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newRouter(tt.health).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	router := newRouter(nil)
	for _, path := range []string{"/api/v1/sales", "/api/v1/clients", "/api/v1/financial/summary", "/api/v1/vendors/me/tier"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d", path, w.Code)
		}
	}
}

func TestCompanyUpdateNeedsAdmin(t *testing.T) {
	router := newRouter(nil)
	token, err := utils.NewJWTManager("test-secret", time.Hour, time.Hour).GenerateAccessToken(utils.Identity{
		UserID: uuid.New(),
		Roles:  []string{entity.RoleVendor},
	})
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/company", strings.NewReader(`{"name":"Águas Claras"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
