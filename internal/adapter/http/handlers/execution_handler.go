package handlers

import (
	"net/http"

	"engclin_tse/internal/adapter/http/dto/request"
	"engclin_tse/internal/adapter/http/dto/response"
	"engclin_tse/internal/adapter/http/middleware"
	"engclin_tse/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ExecutionHandler drives a test execution from draft to saved record and
// exposes the execution history of a service order.
type ExecutionHandler struct {
	usecase usecase.IExecutionUseCase
}

func NewExecutionHandler(uc usecase.IExecutionUseCase) *ExecutionHandler {
	return &ExecutionHandler{usecase: uc}
}

// CreateDraft godoc
// @Summary  Instantiate an unsaved execution from a test profile
// @Tags     executions
// @Accept   json
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    body body request.DraftRequest true "Draft"
// @Success  200 {object} response.ExecutionResponse
// @Router   /executions/draft [post]
func (h *ExecutionHandler) CreateDraft(c *gin.Context) {
	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	draftReq, err := payload.ToDraft()
	if err != nil {
		respondError(c, err)
		return
	}

	draft, err := h.usecase.Instantiate(c.Request.Context(), middleware.TenantID(c), draftReq)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExecution(draft))
}

// Evaluate godoc
// @Summary  Apply technician inputs and recompute conformity
// @Description Malformed numbers leave the point pending and are listed in issues.
// @Tags     executions
// @Accept   json
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    body body request.EvaluateRequest true "Draft and inputs"
// @Success  200 {object} response.EvaluationResponse
// @Router   /executions/evaluate [post]
func (h *ExecutionHandler) Evaluate(c *gin.Context) {
	var payload request.EvaluateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	draft, err := payload.Execution.ToEntity()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.usecase.Evaluate(c.Request.Context(), middleware.TenantID(c), draft, payload.ToInputs())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEvaluation(result))
}

// SaveExecution godoc
// @Summary  Save a test execution (insert when id is empty, otherwise update)
// @Tags     executions
// @Accept   json
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    body body request.SaveExecutionRequest true "Execution and traceability"
// @Success  201 {object} response.ExecutionResponse
// @Success  200 {object} response.ExecutionResponse
// @Router   /executions [post]
func (h *ExecutionHandler) SaveExecution(c *gin.Context) {
	var payload request.SaveExecutionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	draft, err := payload.Execution.ToEntity()
	if err != nil {
		respondError(c, err)
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), middleware.TenantID(c), draft, payload.ToSelection())
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if draft.IsNew() {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromExecution(saved))
}

// GetExecution godoc
// @Summary  Get a saved test execution
// @Tags     executions
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    id path string true "Execution ID"
// @Success  200 {object} response.ExecutionResponse
// @Router   /executions/{id} [get]
func (h *ExecutionHandler) GetExecution(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExecution(e))
}

// ListOrderExecutions godoc
// @Summary  List the executions of a service order, latest first
// @Tags     orders
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    order_id path string true "Service order ID"
// @Success  200 {array} response.ExecutionResponse
// @Router   /orders/{order_id}/executions [get]
func (h *ExecutionHandler) ListOrderExecutions(c *gin.Context) {
	list, err := h.usecase.ListForOrder(c.Request.Context(), middleware.TenantID(c), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExecutions(list))
}

// GetLatestOrderExecution godoc
// @Summary  Get the authoritative (latest) execution of a service order
// @Tags     orders
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    order_id path string true "Service order ID"
// @Success  200 {object} response.ExecutionResponse
// @Router   /orders/{order_id}/executions/latest [get]
func (h *ExecutionHandler) GetLatestOrderExecution(c *gin.Context) {
	e, err := h.usecase.GetLatestForOrder(c.Request.Context(), middleware.TenantID(c), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExecution(e))
}
