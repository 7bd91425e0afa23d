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
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
)

// ICustomerUseCase exposes customer directory operations.

type ICustomerUseCase interface {
	Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, q string) ([]entities.Customer, error)
	Update(ctx context.Context, id string, in UpdateCustomerInput) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

// CreateCustomerInput carries the raw create form.
type CreateCustomerInput struct {
	Name       string
	Phone      string
	Email      string
	LeadSource string
}

// UpdateCustomerInput distinguishes absent fields (leave unchanged) from
// cleared fields (JSON null or empty string).
type UpdateCustomerInput struct {
	Name       patch.String
	Phone      patch.String
	Email      patch.String
	LeadSource patch.String
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error) {
	var errs validate.Errors
	errs = validate.RequiredText(errs, "name", in.Name, 200)
	errs = validate.Phone(errs, "phone", in.Phone)
	errs = validate.Email(errs, "email", in.Email)
	errs = validate.OptionalText(errs, "lead_source", in.LeadSource, 100)
	if err := errs.AsError(); err != nil {
		return entities.Customer{}, err
	}

	now := time.Now().UTC()
	c := entities.Customer{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(in.Name),
		Phone:      strings.TrimSpace(in.Phone),
		Email:      strings.TrimSpace(in.Email),
		LeadSource: strings.TrimSpace(in.LeadSource),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context, q string) ([]entities.Customer, error) {
	return u.repo.List(ctx, strings.TrimSpace(q))
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, in UpdateCustomerInput) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if current.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}

	var errs validate.Errors
	if in.Name.Null {
		errs = errs.Add("name", "cannot be cleared")
	} else if in.Name.Set {
		errs = validate.RequiredText(errs, "name", in.Name.Value, 200)
		current.Name = strings.TrimSpace(in.Name.Value)
	}
	if in.Phone.Null {
		errs = errs.Add("phone", "cannot be cleared")
	} else if in.Phone.Set {
		errs = validate.Phone(errs, "phone", in.Phone.Value)
		current.Phone = strings.TrimSpace(in.Phone.Value)
	}
	if in.Email.Null {
		current.Email = ""
	} else if in.Email.Set {
		errs = validate.Email(errs, "email", in.Email.Value)
		current.Email = strings.TrimSpace(in.Email.Value)
	}
	if in.LeadSource.Null {
		current.LeadSource = ""
	} else if in.LeadSource.Set {
		errs = validate.OptionalText(errs, "lead_source", in.LeadSource.Value, 100)
		current.LeadSource = strings.TrimSpace(in.LeadSource.Value)
	}
	if err := errs.AsError(); err != nil {
		return entities.Customer{}, err
	}

	current.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCustomerNotFound
	}
	return nil
}
