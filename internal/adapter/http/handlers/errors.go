package handlers

import (
	"errors"
	"net/http"

	"engclin_tse/internal/adapter/http/dto/request"
	"engclin_tse/internal/domain/entities"
	"engclin_tse/internal/usecase"
	"engclin_tse/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// mapTSEError translates use case errors into client errors:
// validation 400, tenant scope 403, not found 404, integrity 422, rest 500.
func mapTSEError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTenantMismatch):
		return pkg.NewDomainErrorSimple("TENANT_MISMATCH", "Resource belongs to another tenant", http.StatusForbidden)

	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Test profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStandardNotFound):
		return pkg.NewDomainErrorSimple("STANDARD_NOT_FOUND", "Calibration standard not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExecutionNotFound):
		return pkg.NewDomainErrorSimple("EXECUTION_NOT_FOUND", "Test execution not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)

	case errors.Is(err, entities.ErrMalformedMeasurement):
		return pkg.NewDomainError("MALFORMED_MEASUREMENT", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrUnknownOperator):
		return pkg.NewDomainError("UNKNOWN_OPERATOR", "Unknown comparison operator", err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrUnknownParameterKind):
		return pkg.NewDomainError("UNKNOWN_PARAMETER_KIND", "Unknown parameter kind", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPointStructureChanged):
		return pkg.NewDomainErrorSimple("POINT_STRUCTURE_CHANGED", "Test points do not match the profile or saved execution", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrIdentityChanged):
		return pkg.NewDomainErrorSimple("IDENTITY_CHANGED", "Profile and service order of a saved execution cannot change", http.StatusUnprocessableEntity)

	case errors.Is(err, usecase.ErrProfileRequired):
		return pkg.NewDomainErrorSimple("PROFILE_REQUIRED", "Test profile is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEquipmentRequired):
		return pkg.NewDomainErrorSimple("EQUIPMENT_REQUIRED", "Equipment is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTraceabilityRequired):
		return pkg.NewDomainErrorSimple("TRACEABILITY_REQUIRED", "Select a calibration standard or describe the instrument used", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("ORDER_REQUIRED", "Service order is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoTestPoints):
		return pkg.NewDomainErrorSimple("NO_TEST_POINTS", "Test execution has no points", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPointIndex), errors.Is(err, usecase.ErrInvalidPointInput):
		return pkg.NewDomainErrorSimple("INVALID_POINT_INPUT", "Invalid test point input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidValidity):
		return pkg.NewDomainErrorSimple("INVALID_VALIDITY", "Expiry date is before calibration date", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidParameter),
		errors.Is(err, entities.ErrProfileWithoutParams),
		errors.Is(err, entities.ErrInvalidProfileName),
		errors.Is(err, usecase.ErrInvalidStandardName),
		errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidProfileID),
		errors.Is(err, usecase.ErrInvalidStandardID),
		errors.Is(err, usecase.ErrInvalidExecutionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

	case errors.Is(err, usecase.ErrRendererNotConfigured):
		return pkg.NewDomainErrorSimple("RENDERER_UNAVAILABLE", "Certificate document rendering is not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapTSEError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
