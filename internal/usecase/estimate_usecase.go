package usecase

import (
	"aquaops/internal/domain/entities"
	"aquaops/internal/domain/patch"
	"aquaops/internal/domain/pricing"
	"aquaops/internal/domain/validate"
	"aquaops/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrInvalidEstimateID       = errors.New("invalid estimate id")
	ErrUnknownEstimateStatus   = errors.New("unknown estimate status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

const (
	maxLineItemDescription = 500
	maxLineItemQuantity    = 9999
	maxUnitPriceCents      = 99999999
	maxEstimateNotes       = 5000
)

// IEstimateUseCase exposes quote lifecycle operations.
//
// The admin backend must be able to:
//   - draft an estimate with line items and derive its totals
//   - replace content on an existing estimate and re-derive totals
//   - move an estimate along the status table (the only gated write)
//
// Totals are never accepted from callers. Every write recomputes them from
// the line items and tax rate so a stored estimate always satisfies
// total = subtotal + tax.

type IEstimateUseCase interface {
	Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context, customerID, status string) ([]entities.Estimate, error)
	Update(ctx context.Context, id string, in UpdateEstimateInput) (entities.Estimate, error)
	ChangeStatus(ctx context.Context, id, target string) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
}

// LineItemInput is one priced row of a create or full item replacement.
// The ID is kept when the caller sends one, generated otherwise.
type LineItemInput struct {
	ID             string
	Description    string
	Quantity       patch.Number
	UnitPriceCents patch.Int
}

type CreateEstimateInput struct {
	CustomerID string
	PoolID     string
	Items      []LineItemInput
	TaxRate    patch.Number
	Notes      string
	ValidUntil string
}

// UpdateEstimateInput replaces content fields. A nil Items pointer leaves
// the item list untouched; a present list replaces it wholesale and must
// not be empty.
type UpdateEstimateInput struct {
	PoolID     patch.String
	Items      *[]LineItemInput
	TaxRate    patch.Number
	Notes      patch.String
	ValidUntil patch.String
}

type EstimateUseCase struct {
	repo         interfaces.IEstimateRepository
	customerRepo interfaces.ICustomerRepository
	poolRepo     interfaces.IPoolRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, customerRepo interfaces.ICustomerRepository, poolRepo interfaces.IPoolRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, customerRepo: customerRepo, poolRepo: poolRepo}
}

func buildLineItems(errs validate.Errors, items []LineItemInput) (validate.Errors, []entities.LineItem) {
	if len(items) == 0 {
		return errs.Add("items", "must contain at least one line item"), nil
	}

	out := make([]entities.LineItem, 0, len(items))
	for i, it := range items {
		prefix := fmt.Sprintf("items[%d].", i)
		errs = validate.RequiredText(errs, prefix+"description", it.Description, maxLineItemDescription)

		var qty float64
		switch {
		case it.Quantity.Invalid:
			errs = errs.Add(prefix+"quantity", "must be a number")
		case !it.Quantity.Set:
			errs = errs.Add(prefix+"quantity", "is required")
		default:
			errs = validate.PositiveDecimal(errs, prefix+"quantity", it.Quantity.Value, maxLineItemQuantity)
			qty = it.Quantity.Value
		}

		var unit int64
		switch {
		case it.UnitPriceCents.Invalid:
			errs = errs.Add(prefix+"unit_price_cents", "must be a whole number of cents")
		case !it.UnitPriceCents.Set:
			errs = errs.Add(prefix+"unit_price_cents", "is required")
		default:
			errs = validate.NonNegativeInt(errs, prefix+"unit_price_cents", it.UnitPriceCents.Value, maxUnitPriceCents)
			unit = it.UnitPriceCents.Value
		}

		id := strings.TrimSpace(it.ID)
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, entities.LineItem{
			ID:             id,
			Description:    strings.TrimSpace(it.Description),
			Quantity:       qty,
			UnitPriceCents: unit,
			TotalCents:     pricing.LineItemTotalCents(qty, unit),
		})
	}
	return errs, out
}

func applyTotals(e *entities.Estimate) {
	lines := make([]pricing.Line, 0, len(e.Items))
	for _, it := range e.Items {
		lines = append(lines, pricing.Line{Quantity: it.Quantity, UnitPriceCents: it.UnitPriceCents})
	}
	t := pricing.EstimateTotals(lines, e.TaxRate)
	e.SubtotalCents = t.SubtotalCents
	e.TaxCents = t.TaxCents
	e.TotalCents = t.TotalCents
}

func (u *EstimateUseCase) Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return entities.Estimate{}, ErrInvalidCustomerID
	}

	var errs validate.Errors
	var taxRate float64
	switch {
	case in.TaxRate.Invalid:
		errs = errs.Add("tax_rate", "must be a number")
	case in.TaxRate.Set:
		errs = validate.TaxRate(errs, "tax_rate", in.TaxRate.Value)
		taxRate = in.TaxRate.Value
	}
	errs = validate.OptionalText(errs, "notes", in.Notes, maxEstimateNotes)
	validUntil := strings.TrimSpace(in.ValidUntil)
	if validUntil != "" {
		errs = validate.DateYMD(errs, "valid_until", validUntil)
	}
	var items []entities.LineItem
	errs, items = buildLineItems(errs, in.Items)
	if err := errs.AsError(); err != nil {
		return entities.Estimate{}, err
	}

	owner, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if owner.ID == "" {
		return entities.Estimate{}, ErrCustomerNotFound
	}

	poolID := strings.TrimSpace(in.PoolID)
	if poolID != "" {
		pool, err := u.poolRepo.GetByID(ctx, poolID)
		if err != nil {
			return entities.Estimate{}, err
		}
		if pool.ID == "" {
			return entities.Estimate{}, ErrPoolNotFound
		}
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		PoolID:     poolID,
		Items:      items,
		TaxRate:    taxRate,
		Notes:      strings.TrimSpace(in.Notes),
		ValidUntil: validUntil,
		Status:     entities.EstimateStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyTotals(&e)
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) List(ctx context.Context, customerID, status string) ([]entities.Estimate, error) {
	var st entities.EstimateStatus
	if s := strings.ToLower(strings.TrimSpace(status)); s != "" {
		st = entities.EstimateStatus(s)
		if !st.Valid() {
			return nil, ErrUnknownEstimateStatus
		}
	}
	return u.repo.List(ctx, strings.TrimSpace(customerID), st)
}

func (u *EstimateUseCase) Update(ctx context.Context, id string, in UpdateEstimateInput) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if current.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	var errs validate.Errors
	poolChanged := false
	if in.PoolID.Null {
		current.PoolID = ""
	} else if in.PoolID.Set {
		current.PoolID = strings.TrimSpace(in.PoolID.Value)
		poolChanged = true
	}
	switch {
	case in.TaxRate.Invalid:
		errs = errs.Add("tax_rate", "must be a number")
	case in.TaxRate.Null:
		current.TaxRate = 0
	case in.TaxRate.Set:
		errs = validate.TaxRate(errs, "tax_rate", in.TaxRate.Value)
		current.TaxRate = in.TaxRate.Value
	}
	if in.Notes.Null {
		current.Notes = ""
	} else if in.Notes.Set {
		errs = validate.OptionalText(errs, "notes", in.Notes.Value, maxEstimateNotes)
		current.Notes = strings.TrimSpace(in.Notes.Value)
	}
	if in.ValidUntil.Null {
		current.ValidUntil = ""
	} else if in.ValidUntil.Set {
		errs = validate.DateYMD(errs, "valid_until", in.ValidUntil.Value)
		current.ValidUntil = strings.TrimSpace(in.ValidUntil.Value)
	}
	if in.Items != nil {
		var items []entities.LineItem
		errs, items = buildLineItems(errs, *in.Items)
		current.Items = items
	}
	if err := errs.AsError(); err != nil {
		return entities.Estimate{}, err
	}

	if poolChanged && current.PoolID != "" {
		pool, err := u.poolRepo.GetByID(ctx, current.PoolID)
		if err != nil {
			return entities.Estimate{}, err
		}
		if pool.ID == "" {
			return entities.Estimate{}, ErrPoolNotFound
		}
	}

	applyTotals(&current)
	current.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) ChangeStatus(ctx context.Context, id, target string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	st := entities.EstimateStatus(strings.ToLower(strings.TrimSpace(target)))
	if !st.Valid() {
		return entities.Estimate{}, ErrUnknownEstimateStatus
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if current.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if !current.Status.CanTransitionTo(st) {
		return entities.Estimate{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrEstimateNotFound
	}
	return nil
}
