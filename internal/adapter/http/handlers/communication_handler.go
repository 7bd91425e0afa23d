package handlers

import (
	request "aquaops/internal/adapter/http/dto/request"
	response "aquaops/internal/adapter/http/dto/response"
	"aquaops/internal/usecase"
	"aquaops/pkg"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCommunicationPayload = pkg.NewDomainErrorSimple("INVALID_COMMUNICATION_INPUT", "Invalid communication payload", http.StatusBadRequest)
)

// CommunicationHandler handles HTTP requests for the customer touch-point
// log.

type CommunicationHandler struct {
	usecase usecase.ICommunicationUseCase
}

func NewCommunicationHandler(uc usecase.ICommunicationUseCase) *CommunicationHandler {
	return &CommunicationHandler{usecase: uc}
}

func (h *CommunicationHandler) Log(c *gin.Context) {
	var payload request.CommunicationLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCommunicationPayload.HTTPStatus, errInvalidCommunicationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Log(c.Request.Context(), usecase.LogCommunicationInput{
		CustomerID: payload.CustomerID,
		Type:       payload.Type,
		Direction:  payload.Direction,
		Summary:    payload.Summary,
		OccurredAt: payload.OccurredAt,
		LoggedBy:   payload.LoggedBy,
	})
	if err != nil {
		appErr := mapCommunicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCommunication(created))
}

// List returns one cursor page of the timeline, newest first, filtered by
// the optional query params.
func (h *CommunicationHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(errInvalidCommunicationPayload.HTTPStatus, errInvalidCommunicationPayload.ToHTTPError())
			return
		}
		limit = parsed
	}

	page, err := h.usecase.List(c.Request.Context(), usecase.ListCommunicationsInput{
		CustomerID: c.Query("customer_id"),
		Type:       c.Query("type"),
		Direction:  c.Query("direction"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		Search:     c.Query("search"),
		Limit:      limit,
		Cursor:     c.Query("cursor"),
	})
	if err != nil {
		appErr := mapCommunicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCommunicationPage(page))
}

func (h *CommunicationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCommunicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCommunicationError(err error) *pkg.AppError {
	if appErr, ok := asValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCommunicationID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCommunicationNotFound):
		return pkg.NewDomainErrorSimple("COMMUNICATION_NOT_FOUND", "Communication not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
