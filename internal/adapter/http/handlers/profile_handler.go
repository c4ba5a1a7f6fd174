package handlers

import (
	"net/http"

	"engclin_tse/internal/adapter/http/dto/request"
	"engclin_tse/internal/adapter/http/dto/response"
	"engclin_tse/internal/adapter/http/middleware"
	"engclin_tse/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves test profile authoring.

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// ListProfiles godoc
// @Summary  List the tenant's test profiles
// @Tags     profiles
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Success  200 {array} response.ProfileResponse
// @Router   /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.usecase.List(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfiles(profiles))
}

// GetProfile godoc
// @Summary  Get a test profile
// @Tags     profiles
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    id path string true "Profile ID"
// @Success  200 {object} response.ProfileResponse
// @Router   /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.usecase.Get(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}

// CreateProfile godoc
// @Summary  Create a test profile
// @Tags     profiles
// @Accept   json
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    body body request.ProfileRequest true "Profile"
// @Success  201 {object} response.ProfileResponse
// @Router   /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), middleware.TenantID(c), payload.ToEntity(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProfile(p))
}

// UpdateProfile godoc
// @Summary  Replace a test profile definition
// @Tags     profiles
// @Accept   json
// @Produce  json
// @Param    X-Tenant-ID header string true "Tenant"
// @Param    id path string true "Profile ID"
// @Param    body body request.ProfileRequest true "Profile"
// @Success  200 {object} response.ProfileResponse
// @Router   /profiles/{id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), middleware.TenantID(c), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}
