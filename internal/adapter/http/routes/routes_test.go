package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"engclin_tse/internal/adapter/http/handlers"
	"engclin_tse/internal/adapter/http/handlers/mocks"
	"engclin_tse/internal/adapter/http/middleware"
	"engclin_tse/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIExecutionUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	exec := mocks.NewMockIExecutionUseCase(ctrl)
	h := Handlers{
		Profile:     handlers.NewProfileHandler(mocks.NewMockIProfileUseCase(ctrl)),
		Standard:    handlers.NewStandardHandler(mocks.NewMockIStandardUseCase(ctrl)),
		Execution:   handlers.NewExecutionHandler(exec),
		Certificate: handlers.NewCertificateHandler(mocks.NewMockICertificateUseCase(ctrl)),
	}
	return NewRouter(h, zap.NewNop()), exec
}

func TestRouter(t *testing.T) {
	t.Run("ping needs no tenant", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("tenant routes require header", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/os-1/executions/latest", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("latest route reaches handler", func(t *testing.T) {
		r, exec := newTestRouter(t)
		exec.EXPECT().GetLatestForOrder(gomock.Any(), "tenant-a", "os-1").Return(entities.TestExecution{ID: "7"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/os-1/executions/latest", nil)
		req.Header.Set(middleware.HeaderTenantID, "tenant-a")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("metrics exposed", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
