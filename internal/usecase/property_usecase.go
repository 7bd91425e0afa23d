package usecase

import (
	"aquaops/internal/domain/entities"
	"aquaops/internal/domain/patch"
	"aquaops/internal/domain/validate"
	"aquaops/internal/usecase/interfaces"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound  = errors.New("property not found")
	ErrInvalidPropertyID = errors.New("invalid property id")
)

// IPropertyUseCase exposes service address operations.

type IPropertyUseCase interface {
	Create(ctx context.Context, in CreatePropertyInput) (entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Property, error)
	Update(ctx context.Context, id string, in UpdatePropertyInput) (entities.Property, error)
	Delete(ctx context.Context, id string) error
}

type CreatePropertyInput struct {
	CustomerID   string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Zip          string
	GateCode     string
	AccessNotes  string
}

type UpdatePropertyInput struct {
	AddressLine1 patch.String
	AddressLine2 patch.String
	City         patch.String
	State        patch.String
	Zip          patch.String
	GateCode     patch.String
	AccessNotes  patch.String
}

type PropertyUseCase struct {
	repo         interfaces.IPropertyRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IPropertyUseCase = (*PropertyUseCase)(nil)

func NewPropertyUseCase(repo interfaces.IPropertyRepository, customerRepo interfaces.ICustomerRepository) *PropertyUseCase {
	return &PropertyUseCase{repo: repo, customerRepo: customerRepo}
}

func (u *PropertyUseCase) Create(ctx context.Context, in CreatePropertyInput) (entities.Property, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return entities.Property{}, ErrInvalidCustomerID
	}

	var errs validate.Errors
	errs = validate.RequiredText(errs, "address_line1", in.AddressLine1, 200)
	errs = validate.OptionalText(errs, "address_line2", in.AddressLine2, 200)
	errs = validate.RequiredText(errs, "city", in.City, 100)
	errs = validate.StateCode(errs, "state", in.State)
	errs = validate.ZipCode(errs, "zip", in.Zip)
	errs = validate.OptionalText(errs, "gate_code", in.GateCode, 20)
	errs = validate.OptionalText(errs, "access_notes", in.AccessNotes, 500)
	if err := errs.AsError(); err != nil {
		return entities.Property{}, err
	}

	owner, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Property{}, err
	}
	if owner.ID == "" {
		return entities.Property{}, ErrCustomerNotFound
	}

	now := time.Now().UTC()
	p := entities.Property{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		AddressLine1: strings.TrimSpace(in.AddressLine1),
		AddressLine2: strings.TrimSpace(in.AddressLine2),
		City:         strings.TrimSpace(in.City),
		State:        strings.ToUpper(strings.TrimSpace(in.State)),
		Zip:          strings.TrimSpace(in.Zip),
		GateCode:     strings.TrimSpace(in.GateCode),
		AccessNotes:  strings.TrimSpace(in.AccessNotes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, p)
}

func (u *PropertyUseCase) GetByID(ctx context.Context, id string) (entities.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Property{}, ErrInvalidPropertyID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return p, nil
}

func (u *PropertyUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Property, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *PropertyUseCase) Update(ctx context.Context, id string, in UpdatePropertyInput) (entities.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Property{}, ErrInvalidPropertyID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}
	if current.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}

	var errs validate.Errors
	if in.AddressLine1.Null {
		errs = errs.Add("address_line1", "cannot be cleared")
	} else if in.AddressLine1.Set {
		errs = validate.RequiredText(errs, "address_line1", in.AddressLine1.Value, 200)
		current.AddressLine1 = strings.TrimSpace(in.AddressLine1.Value)
	}
	if in.AddressLine2.Null {
		current.AddressLine2 = ""
	} else if in.AddressLine2.Set {
		errs = validate.OptionalText(errs, "address_line2", in.AddressLine2.Value, 200)
		current.AddressLine2 = strings.TrimSpace(in.AddressLine2.Value)
	}
	if in.City.Null {
		errs = errs.Add("city", "cannot be cleared")
	} else if in.City.Set {
		errs = validate.RequiredText(errs, "city", in.City.Value, 100)
		current.City = strings.TrimSpace(in.City.Value)
	}
	if in.State.Null {
		errs = errs.Add("state", "cannot be cleared")
	} else if in.State.Set {
		errs = validate.StateCode(errs, "state", in.State.Value)
		current.State = strings.ToUpper(strings.TrimSpace(in.State.Value))
	}
	if in.Zip.Null {
		errs = errs.Add("zip", "cannot be cleared")
	} else if in.Zip.Set {
		errs = validate.ZipCode(errs, "zip", in.Zip.Value)
		current.Zip = strings.TrimSpace(in.Zip.Value)
	}
	if in.GateCode.Null {
		current.GateCode = ""
	} else if in.GateCode.Set {
		errs = validate.OptionalText(errs, "gate_code", in.GateCode.Value, 20)
		current.GateCode = strings.TrimSpace(in.GateCode.Value)
	}
	if in.AccessNotes.Null {
		current.AccessNotes = ""
	} else if in.AccessNotes.Set {
		errs = validate.OptionalText(errs, "access_notes", in.AccessNotes.Value, 500)
		current.AccessNotes = strings.TrimSpace(in.AccessNotes.Value)
	}
	if err := errs.AsError(); err != nil {
		return entities.Property{}, err
	}

	current.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Property{}, err
	}
	if updated.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return updated, nil
}

func (u *PropertyUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPropertyID
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPropertyNotFound
	}
	return nil
}
