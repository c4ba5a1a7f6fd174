package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"engclin_tse/internal/adapter/http/handlers/mocks"
	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase"
	"engclin_tse/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCertificateHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("order payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICertificateUseCase(ctrl)
		h := NewCertificateHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id/certificate", h.GetOrderCertificate)

		uc.EXPECT().AssembleForOrder(gomock.Any(), "tenant-a", "os-1").Return(entities.CertificatePayload{
			ExecutionID:   "7",
			OrderID:       "os-1",
			OverallResult: entities.OverallResultApproved,
			Client:        entities.CertificateClient{Name: entities.Placeholder},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newTenantRequest(http.MethodGet, "/v1/orders/os-1/certificate", ""))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body entities.CertificatePayload
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.ExecutionID != "7" || body.Client.Name != "-" {
			t.Fatalf("unexpected payload: %+v", body)
		}
	})

	t.Run("execution of another tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICertificateUseCase(ctrl)
		h := NewCertificateHandler(uc)

		r := gin.New()
		r.GET("/v1/executions/:id/certificate", h.GetExecutionCertificate)

		uc.EXPECT().AssembleForExecution(gomock.Any(), "tenant-a", "exec-b").Return(entities.CertificatePayload{}, usecase.ErrTenantMismatch)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newTenantRequest(http.MethodGet, "/v1/executions/exec-b/certificate", ""))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("document download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICertificateUseCase(ctrl)
		h := NewCertificateHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id/certificate/document", h.DownloadOrderCertificate)

		uc.EXPECT().Render(gomock.Any(), "tenant-a", "os-1").Return(interfaces.RenderedDocument{
			FileName:    "tse-certificate-os-1-7.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     []byte("PK"),
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newTenantRequest(http.MethodGet, "/v1/orders/os-1/certificate/document", ""))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), "tse-certificate-os-1-7.xlsx") {
			t.Fatalf("unexpected disposition: %q", w.Header().Get("Content-Disposition"))
		}
		if w.Body.String() != "PK" {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("renderer missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICertificateUseCase(ctrl)
		h := NewCertificateHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id/certificate/document", h.DownloadOrderCertificate)

		uc.EXPECT().Render(gomock.Any(), "tenant-a", "os-1").Return(interfaces.RenderedDocument{}, usecase.ErrRendererNotConfigured)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newTenantRequest(http.MethodGet, "/v1/orders/os-1/certificate/document", ""))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
