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
	errInvalidPoolPayload = pkg.NewDomainErrorSimple("INVALID_POOL_INPUT", "Invalid pool payload", http.StatusBadRequest)
)

// PoolHandler handles HTTP requests for pool records.

type PoolHandler struct {
	usecase usecase.IPoolUseCase
}

func NewPoolHandler(uc usecase.IPoolUseCase) *PoolHandler {
	return &PoolHandler{usecase: uc}
}

func (h *PoolHandler) Create(c *gin.Context) {
	var payload request.PoolCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPoolPayload.HTTPStatus, errInvalidPoolPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreatePoolInput{
		PropertyID:     payload.PropertyID,
		Type:           payload.Type,
		Surface:        payload.Surface,
		LengthFt:       payload.LengthFt,
		WidthFt:        payload.WidthFt,
		ShallowDepthFt: payload.ShallowDepthFt,
		DeepDepthFt:    payload.DeepDepthFt,
		VolumeGallons:  payload.VolumeGallons,
		EquipmentNotes: payload.EquipmentNotes,
	})
	if err != nil {
		appErr := mapPoolError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPool(created))
}

// List returns the pools at ?property_id=.
func (h *PoolHandler) List(c *gin.Context) {
	pools, err := h.usecase.ListByPropertyID(c.Request.Context(), c.Query("property_id"))
	if err != nil {
		appErr := mapPoolError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPools(pools))
}

func (h *PoolHandler) GetByID(c *gin.Context) {
	pool, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPoolError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPool(pool))
}

func (h *PoolHandler) Update(c *gin.Context) {
	var payload request.PoolUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPoolPayload.HTTPStatus, errInvalidPoolPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdatePoolInput{
		Type:           payload.Type,
		Surface:        payload.Surface,
		LengthFt:       payload.LengthFt,
		WidthFt:        payload.WidthFt,
		ShallowDepthFt: payload.ShallowDepthFt,
		DeepDepthFt:    payload.DeepDepthFt,
		VolumeGallons:  payload.VolumeGallons,
		EquipmentNotes: payload.EquipmentNotes,
	})
	if err != nil {
		appErr := mapPoolError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPool(updated))
}

func (h *PoolHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPoolError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPoolError(err error) *pkg.AppError {
	if appErr, ok := asValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPoolID), errors.Is(err, usecase.ErrInvalidPropertyID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPoolNotFound):
		return pkg.NewDomainErrorSimple("POOL_NOT_FOUND", "Pool not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
