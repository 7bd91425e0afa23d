package handlers

import (
	request "aquaops/internal/adapter/http/dto/request"
	response "aquaops/internal/adapter/http/dto/response"
	"aquaops/internal/infrastructure/documents"
	"aquaops/internal/usecase"
	"aquaops/pkg"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for customer estimates: CRUD, the
// gated status workflow and the PDF quote export.

type EstimateHandler struct {
	usecase   usecase.IEstimateUseCase
	customers usecase.ICustomerUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, customers usecase.ICustomerUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc, customers: customers}
}

func (h *EstimateHandler) Create(c *gin.Context) {
	var payload request.EstimateCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateEstimateInput{
		CustomerID: payload.CustomerID,
		PoolID:     payload.PoolID,
		Items:      toLineItemInputs(payload.Items),
		TaxRate:    payload.TaxRate,
		Notes:      payload.Notes,
		ValidUntil: payload.ValidUntil,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(created))
}

// List returns estimates filtered by the optional ?customer_id= and
// ?status= query params.
func (h *EstimateHandler) List(c *gin.Context) {
	estimates, err := h.usecase.List(c.Request.Context(), c.Query("customer_id"), c.Query("status"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *EstimateHandler) GetByID(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) Update(c *gin.Context) {
	var payload request.EstimateUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	var items *[]usecase.LineItemInput
	if payload.Items != nil {
		converted := toLineItemInputs(*payload.Items)
		items = &converted
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateEstimateInput{
		PoolID:     payload.PoolID,
		Items:      items,
		TaxRate:    payload.TaxRate,
		Notes:      payload.Notes,
		ValidUntil: payload.ValidUntil,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

// ChangeStatus moves an estimate through the workflow. Illegal moves come
// back as a 409 without touching the stored record.
func (h *EstimateHandler) ChangeStatus(c *gin.Context) {
	var payload request.EstimateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func (h *EstimateHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportPDF streams the printable quote. A missing customer record does not
// block the export; deletes do not cascade, so old estimates may outlive
// their customer.
func (h *EstimateHandler) ExportPDF(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	customer, err := h.customers.GetByID(c.Request.Context(), estimate.CustomerID)
	if err != nil && !errors.Is(err, usecase.ErrCustomerNotFound) && !errors.Is(err, usecase.ErrInvalidCustomerID) {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := documents.BuildEstimatePDF(estimate, customer)
	if err != nil {
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Could not build the export", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "estimate-"+estimate.ID+".pdf"))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func toLineItemInputs(items []request.LineItemRequest) []usecase.LineItemInput {
	out := make([]usecase.LineItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.LineItemInput{
			ID:             it.ID,
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
		})
	}
	return out
}

func mapEstimateError(err error) *pkg.AppError {
	if appErr, ok := asValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownEstimateStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Unknown estimate status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status change not allowed from the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPoolNotFound):
		return pkg.NewDomainErrorSimple("POOL_NOT_FOUND", "Pool not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
