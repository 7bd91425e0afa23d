package usecase

import (
	"aquaops/internal/domain/entities"
	"aquaops/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrDepositPaymentNotFound         = errors.New("deposit payment not found")
	ErrInvalidPaymentEstimateID       = errors.New("invalid estimate_id")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrEstimateNotConverted           = errors.New("estimate not converted")
	ErrInvalidDepositAmount           = errors.New("invalid deposit amount")
	ErrDepositExceedsTotal            = errors.New("deposit exceeds estimate total")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// depositFraction is the default deposit when the caller does not name an
// amount: a quarter of the estimate total.
const depositFraction = 0.25

// IDepositPaymentUseCase encapsulates deposit collection on won estimates.
//
// A deposit can only be taken once an estimate reaches converted; the
// charge goes through the payment gateway and the provider response is
// stored verbatim for reconciliation.

type IDepositPaymentUseCase interface {
	CollectDeposit(ctx context.Context, estimateID string, amountCents int64, providerPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error)
	GetLatestByEstimateID(ctx context.Context, estimateID string) (entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo         interfaces.IDepositPaymentRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, estimateRepo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, estimateRepo: estimateRepo, gateway: gateway}
}

func (u *DepositPaymentUseCase) CollectDeposit(ctx context.Context, estimateID string, amountCents int64, providerPayload json.RawMessage) (entities.DepositPayment, error) {
	log.Printf("[deposit][usecase] collect start raw_estimate_id=%q amount_cents=%d payload_len=%d", estimateID, amountCents, len(providerPayload))
	mockMode := isPaymentGatewayMockEnabled()
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		log.Printf("[deposit][usecase] invalid estimate_id (empty)")
		return entities.DepositPayment{}, ErrInvalidPaymentEstimateID
	}
	if amountCents < 0 {
		log.Printf("[deposit][usecase] invalid amount estimate_id=%s amount_cents=%d", estimateID, amountCents)
		return entities.DepositPayment{}, ErrInvalidDepositAmount
	}
	if len(providerPayload) == 0 {
		if mockMode {
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][usecase] invalid payload (empty) estimate_id=%s", estimateID)
			return entities.DepositPayment{}, ErrInvalidProviderPayload
		}
	}
	if !json.Valid(providerPayload) {
		if mockMode {
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][usecase] invalid payload (not-json) estimate_id=%s", estimateID)
			return entities.DepositPayment{}, ErrInvalidProviderPayload
		}
	}
	if u.gateway == nil {
		log.Printf("[deposit][usecase] gateway not configured estimate_id=%s", estimateID)
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}

	log.Printf("[deposit][usecase] loading estimate estimate_id=%s", estimateID)
	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		log.Printf("[deposit][usecase] failed loading estimate estimate_id=%s err=%v", estimateID, err)
		return entities.DepositPayment{}, err
	}
	if est.ID == "" {
		log.Printf("[deposit][usecase] estimate not found estimate_id=%s", estimateID)
		return entities.DepositPayment{}, ErrEstimateNotFound
	}
	// Deposits are only collected on converted estimates. Mock mode waives
	// the status check so the payment flow can be exercised end to end
	// against estimates in any state.
	if !mockMode && est.Status != entities.EstimateStatusConverted {
		log.Printf("[deposit][usecase] estimate not converted estimate_id=%s status=%s", estimateID, est.Status)
		return entities.DepositPayment{}, ErrEstimateNotConverted
	}

	if amountCents == 0 {
		amountCents = int64(math.Round(float64(est.TotalCents) * depositFraction))
	}
	if amountCents > est.TotalCents {
		log.Printf("[deposit][usecase] deposit exceeds total estimate_id=%s amount_cents=%d total_cents=%d", estimateID, amountCents, est.TotalCents)
		return entities.DepositPayment{}, ErrDepositExceedsTotal
	}
	log.Printf("[deposit][usecase] estimate loaded estimate_id=%s status=%s total_cents=%d amount_cents=%d", estimateID, est.Status, est.TotalCents, amountCents)
	amount := float64(amountCents) / 100

	// Ensure basic linkage with the estimate when the caller didn't provide
	// it. Mercado Pago uses external_reference to help reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[deposit][usecase] missing payment_method_id estimate_id=%s", estimateID)
			return entities.DepositPayment{}, ErrInvalidProviderPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Printf("[deposit][usecase] missing/invalid payer estimate_id=%s", estimateID)
			return entities.DepositPayment{}, ErrInvalidProviderPayload
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = estimateID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Deposit on estimate %s", estimateID)
		}

		// The amount charged is decided here, never by the caller's payload.
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
			log.Printf("[deposit][usecase] payload enriched estimate_id=%s payload_len=%d", estimateID, len(providerPayload))
		}
	} else {
		log.Printf("[deposit][usecase] payload unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[deposit][usecase] mock mode enabled; skipping external payment gateway estimate_id=%s", estimateID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if len(providerPayload) > 0 && json.Valid(providerPayload) {
			_ = json.Unmarshal(providerPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		if _, ok := mockResp["external_reference"]; !ok {
			mockResp["external_reference"] = estimateID
		}
		if _, ok := mockResp["transaction_amount"]; !ok {
			mockResp["transaction_amount"] = amount
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.DepositPayment{}, mErr
		}
		providerResp = b
	} else {
		log.Printf("[deposit][usecase] calling payment gateway estimate_id=%s", estimateID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, providerPayload)
		if err != nil {
			log.Printf("[deposit][usecase] payment gateway failed estimate_id=%s err=%v", estimateID, err)
			if isGatewayCustomerNotFound(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayCustomerNotFound
			}
			if isGatewayInvalidUsers(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayInvalidUsers
			}
			if isGatewayUnauthorized(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.DepositPayment{}, err
		}
	}
	log.Printf("[deposit][usecase] payment gateway done estimate_id=%s provider_payment_id=%s provider_status=%s", estimateID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[deposit][usecase] provider response unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	p := entities.DepositPayment{
		ID:                 providerPaymentID,
		EstimateID:         estimateID,
		AmountCents:        amountCents,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[deposit][usecase] payment repository create failed estimate_id=%s payment_id=%s err=%v", estimateID, p.ID, err)
		return entities.DepositPayment{}, err
	}
	log.Printf("[deposit][usecase] collect success estimate_id=%s payment_id=%s status=%s amount_cents=%d", estimateID, created.ID, created.Status, created.AmountCents)
	return created, nil
}

// paymentStatusFromProvider folds Mercado Pago's status vocabulary into the
// three states the admin views care about.
func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDeclined
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			// Sandbox-safe fallback recommended by Mercado Pago examples.
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if !strings.HasPrefix(accessToken, "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID == "" || rawID == "<nil>" || rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[deposit][usecase] mapped sandbox payer user_id to payer.email")
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

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidPaymentEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}

func (u *DepositPaymentUseCase) GetLatestByEstimateID(ctx context.Context, estimateID string) (entities.DepositPayment, error) {
	payments, err := u.ListByEstimateID(ctx, estimateID)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if len(payments) == 0 {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}
