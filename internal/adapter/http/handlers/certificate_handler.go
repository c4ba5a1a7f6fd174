package handlers

import (
	"fmt"
	"net/http"

	"engclin_tse/internal/adapter/http/middleware"
	"engclin_tse/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CertificateHandler serves certificate payloads and rendered documents.

type CertificateHandler struct {
	usecase usecase.ICertificateUseCase
}

func NewCertificateHandler(uc usecase.ICertificateUseCase) *CertificateHandler {
	return &CertificateHandler{usecase: uc}
}

// GetOrderCertificate godoc
// @Summary  Certificate payload of the latest execution of an order
// @Tags     certificates
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    order_id path string true "Service order ID"
// @Success  200 {object} entities.CertificatePayload
// @Router   /orders/{order_id}/certificate [get]
func (h *CertificateHandler) GetOrderCertificate(c *gin.Context) {
	payload, err := h.usecase.AssembleForOrder(c.Request.Context(), middleware.TenantID(c), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// GetExecutionCertificate godoc
// @Summary  Certificate payload of a specific execution
// @Tags     certificates
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    id path string true "Execution ID"
// @Success  200 {object} entities.CertificatePayload
// @Router   /executions/{id}/certificate [get]
func (h *CertificateHandler) GetExecutionCertificate(c *gin.Context) {
	payload, err := h.usecase.AssembleForExecution(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// DownloadOrderCertificate godoc
// @Summary  Rendered certificate document of the latest execution of an order
// @Tags     certificates
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    order_id path string true "Service order ID"
// @Success  200 {file} file
// @Router   /orders/{order_id}/certificate/document [get]
func (h *CertificateHandler) DownloadOrderCertificate(c *gin.Context) {
	doc, err := h.usecase.Render(c.Request.Context(), middleware.TenantID(c), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
