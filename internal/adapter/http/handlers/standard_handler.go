package handlers

import (
	"net/http"

	"engclin_tse/internal/adapter/http/dto/request"
	"engclin_tse/internal/adapter/http/dto/response"
	"engclin_tse/internal/adapter/http/middleware"
	"engclin_tse/internal/usecase"

	"github.com/gin-gonic/gin"
)

// StandardHandler serves the calibration standard catalog.

type StandardHandler struct {
	usecase usecase.IStandardUseCase
}

func NewStandardHandler(uc usecase.IStandardUseCase) *StandardHandler {
	return &StandardHandler{usecase: uc}
}

// ListStandards godoc
// @Summary  List the tenant's calibration standards
// @Tags     standards
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Success  200 {array} response.StandardResponse
// @Router   /standards [get]
func (h *StandardHandler) ListStandards(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStandards(list))
}

// GetStandard godoc
// @Summary  Get a calibration standard
// @Tags     standards
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    id path string true "Standard ID"
// @Success  200 {object} response.StandardResponse
// @Router   /standards/{id} [get]
func (h *StandardHandler) GetStandard(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStandard(s))
}

// CreateStandard godoc
// @Summary  Register a calibration standard
// @Tags     standards
// @Accept   json
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    body body request.StandardRequest true "Standard"
// @Success  201 {object} response.StandardResponse
// @Router   /standards [post]
func (h *StandardHandler) CreateStandard(c *gin.Context) {
	var payload request.StandardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	s, err := payload.ToEntity("")
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.TenantID(c), s)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromStandard(created))
}

// UpdateStandard godoc
// @Summary  Record a re-certification or correction of a standard
// @Description Executions already saved keep the snapshot taken at save time.
// @Tags     standards
// @Accept   json
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    id path string true "Standard ID"
// @Param    body body request.StandardRequest true "Standard"
// @Success  200 {object} response.StandardResponse
// @Router   /standards/{id} [put]
func (h *StandardHandler) UpdateStandard(c *gin.Context) {
	var payload request.StandardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	s, err := payload.ToEntity(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), middleware.TenantID(c), s)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStandard(updated))
}
