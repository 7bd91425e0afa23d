package handlers

import (
	request "aquaops/internal/adapter/http/dto/request"
	response "aquaops/internal/adapter/http/dto/response"
	"aquaops/internal/usecase"
	"aquaops/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
)

// AppointmentHandler handles HTTP requests for the visit calendar.

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var payload request.AppointmentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateAppointmentInput{
		CustomerID: payload.CustomerID,
		PropertyID: payload.PropertyID,
		Service:    payload.Service,
		StartsAt:   payload.StartsAt,
		EndsAt:     payload.EndsAt,
		Notes:      payload.Notes,
	})
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(created))
}

// List returns appointments inside the ?from=/?to= window, optionally
// narrowed to one customer. Bounds accept dates or full timestamps.
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.usecase.ListWindow(c.Request.Context(), c.Query("from"), c.Query("to"), c.Query("customer_id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointments(appointments))
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	appointment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(appointment))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var payload request.AppointmentUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateAppointmentInput{
		PropertyID: payload.PropertyID,
		Service:    payload.Service,
		StartsAt:   payload.StartsAt,
		EndsAt:     payload.EndsAt,
		Notes:      payload.Notes,
		Status:     payload.Status,
	})
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAppointmentError(err error) *pkg.AppError {
	if appErr, ok := asValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyNotFound), errors.Is(err, usecase.ErrPropertyNotOwned):
		// A property owned by a different customer is indistinguishable
		// from a missing one at the API boundary.
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found for this customer", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
