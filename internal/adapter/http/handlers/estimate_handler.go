package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "hospital_billing/internal/adapter/http/dto/request"
	response "hospital_billing/internal/adapter/http/dto/response"
	"hospital_billing/internal/adapter/http/middleware"
	"hospital_billing/internal/usecase"
	"hospital_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errMissingActor           = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// EstimateHandler handles HTTP requests for estimate computation and the
// saved-estimate records.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ComputeEstimate calculates an estimate without persisting anything.
func (h *EstimateHandler) ComputeEstimate(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.ComputeEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.ComputeEstimate(c.Request.Context(), payload.ToInput(), actor)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// SaveEstimate persists a previously computed estimate and assigns the next
// document number.
func (h *EstimateHandler) SaveEstimate(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.SaveEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.SaveEstimate(c.Request.Context(), payload.ToInput(), actor)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSaveResult(result))
}

// ListEstimates returns saved estimates visible to the caller. Admins may pass
// ?view_all=true to see everyone's.
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	viewAll := strings.EqualFold(c.Query("view_all"), "true")

	ests, err := h.usecase.ListEstimates(c.Request.Context(), actor, viewAll)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSavedEstimates(ests))
}

// GetEstimate returns one saved estimate with its line snapshots.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	est, services, err := h.usecase.GetEstimate(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSavedEstimateDetail(est, services))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPatientName),
		errors.Is(err, usecase.ErrInvalidPatientCategory),
		errors.Is(err, usecase.ErrInvalidLengthOfStay),
		errors.Is(err, usecase.ErrNoValidServices),
		errors.Is(err, usecase.ErrMissingEstimatePayload),
		errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainError("INVALID_ESTIMATE_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateAccessDenied):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEstimateNumberConflict):
		return pkg.NewDomainErrorSimple("ESTIMATE_NUMBER_CONFLICT", "Could not assign an estimate number, please retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
