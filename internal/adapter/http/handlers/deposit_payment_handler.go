package handlers

import (
	request "aquaops/internal/adapter/http/dto/request"
	response "aquaops/internal/adapter/http/dto/response"
	"aquaops/internal/usecase"
	"aquaops/pkg"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// DepositPaymentHandler handles HTTP requests for estimate deposits.

type DepositPaymentHandler struct {
	usecase usecase.IDepositPaymentUseCase
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc}
}

// CollectDeposit charges the deposit for the estimate in the path. The body
// may name an explicit amount_cents and a provider_payload; an absent amount
// falls back to the standard deposit fraction.
func (h *DepositPaymentHandler) CollectDeposit(c *gin.Context) {
	estimateID := c.Param("id")
	log.Printf("[deposit][handler] collect start estimate_id=%s", estimateID)
	mockMode := isPaymentGatewayMockEnabled()
	amountCents, providerPayload, err := readDepositRequest(c)
	if err != nil {
		if mockMode {
			log.Printf("[deposit][handler] payload invalid in mock mode; fallback to empty payload estimate_id=%s err=%v", estimateID, err)
			amountCents, providerPayload = 0, json.RawMessage("{}")
		} else {
			log.Printf("[deposit][handler] invalid payload estimate_id=%s err=%v", estimateID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CollectDeposit(c.Request.Context(), estimateID, amountCents, providerPayload)
	if err != nil {
		log.Printf("[deposit][handler] collect failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] collect success estimate_id=%s payment_id=%s status=%s", estimateID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// GetLatestByEstimateID returns the most recent deposit for an estimate.
func (h *DepositPaymentHandler) GetLatestByEstimateID(c *gin.Context) {
	estimateID := c.Param("id")
	log.Printf("[deposit][handler] get-by-estimate start estimate_id=%s", estimateID)

	latest, err := h.usecase.GetLatestByEstimateID(c.Request.Context(), estimateID)
	if err != nil {
		log.Printf("[deposit][handler] get-by-estimate failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] get-by-estimate success estimate_id=%s payment_id=%s status=%s", estimateID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(latest))
}

// readDepositRequest pulls the amount override and provider payload out of
// the body. An enveloped body ({"amount_cents": ..., "provider_payload":
// {...}}) is unwrapped; any other JSON object is treated as the provider
// payload itself, so callers can POST a bare Mercado Pago payment as-is.
func readDepositRequest(c *gin.Context) (int64, json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return 0, nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return 0, json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return 0, nil, errors.New("request body is not valid json")
	}

	var envelope request.DepositCreateRequest
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return 0, nil, err
	}
	if envelope.AmountCents.Invalid {
		return 0, nil, errors.New("amount_cents is not a number")
	}

	payload := json.RawMessage(raw)
	if len(envelope.ProviderPayload) > 0 {
		wrapped := strings.TrimSpace(string(envelope.ProviderPayload))
		if wrapped == "" || wrapped == "null" {
			return 0, nil, errors.New("provider_payload cannot be empty")
		}
		payload = envelope.ProviderPayload
	}

	return envelope.AmountCents.Value, payload, nil
}

func mapDepositPaymentError(err error) *pkg.AppError {
	if appErr, ok := asValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentEstimateID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDepositAmount):
		return pkg.NewDomainErrorSimple("INVALID_DEPOSIT_AMOUNT", "Invalid deposit amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDepositExceedsTotal):
		return pkg.NewDomainErrorSimple("DEPOSIT_EXCEEDS_TOTAL", "Deposit cannot exceed the estimate total", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotConverted):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_CONVERTED", "Estimate not converted", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
