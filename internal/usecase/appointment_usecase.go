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
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidAppointmentID = errors.New("invalid appointment id")
	ErrPropertyNotOwned     = errors.New("property does not belong to customer")
)

const maxAppointmentNotes = 1000

// IAppointmentUseCase exposes the visit calendar. An appointment is a time
// window on a customer, optionally pinned to one of their properties.

type IAppointmentUseCase interface {
	Create(ctx context.Context, in CreateAppointmentInput) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListWindow(ctx context.Context, from, to, customerID string) ([]entities.Appointment, error)
	Update(ctx context.Context, id string, in UpdateAppointmentInput) (entities.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type CreateAppointmentInput struct {
	CustomerID string
	PropertyID string
	Service    string
	StartsAt   string
	EndsAt     string
	Notes      string
}

type UpdateAppointmentInput struct {
	PropertyID patch.String
	Service    patch.String
	StartsAt   patch.String
	EndsAt     patch.String
	Notes      patch.String
	Status     patch.String
}

type AppointmentUseCase struct {
	repo         interfaces.IAppointmentRepository
	customerRepo interfaces.ICustomerRepository
	propertyRepo interfaces.IPropertyRepository
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository, customerRepo interfaces.ICustomerRepository, propertyRepo interfaces.IPropertyRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, customerRepo: customerRepo, propertyRepo: propertyRepo}
}

func timestampField(errs validate.Errors, field, raw string) (validate.Errors, time.Time) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return errs.Add(field, "is required"), time.Time{}
	}
	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return errs.Add(field, "must be an RFC 3339 timestamp"), time.Time{}
	}
	return errs, t.UTC()
}

func (u *AppointmentUseCase) checkProperty(ctx context.Context, propertyID, customerID string) error {
	p, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPropertyNotFound
	}
	if p.CustomerID != customerID {
		return ErrPropertyNotOwned
	}
	return nil
}

func (u *AppointmentUseCase) Create(ctx context.Context, in CreateAppointmentInput) (entities.Appointment, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return entities.Appointment{}, ErrInvalidCustomerID
	}

	var errs validate.Errors
	service := entities.AppointmentService(strings.ToLower(strings.TrimSpace(in.Service)))
	if !service.Valid() {
		errs = errs.Add("service", "must be one of maintenance, repair, estimate_visit, install, other")
	}
	var startsAt, endsAt time.Time
	errs, startsAt = timestampField(errs, "starts_at", in.StartsAt)
	errs, endsAt = timestampField(errs, "ends_at", in.EndsAt)
	if !startsAt.IsZero() && !endsAt.IsZero() && !endsAt.After(startsAt) {
		errs = errs.Add("ends_at", "must be after starts_at")
	}
	errs = validate.OptionalText(errs, "notes", in.Notes, maxAppointmentNotes)
	if err := errs.AsError(); err != nil {
		return entities.Appointment{}, err
	}

	owner, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if owner.ID == "" {
		return entities.Appointment{}, ErrCustomerNotFound
	}

	propertyID := strings.TrimSpace(in.PropertyID)
	if propertyID != "" {
		if err := u.checkProperty(ctx, propertyID, customerID); err != nil {
			return entities.Appointment{}, err
		}
	}

	now := time.Now().UTC()
	a := entities.Appointment{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		PropertyID: propertyID,
		Service:    service,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
		Notes:      strings.TrimSpace(in.Notes),
		Status:     entities.AppointmentStatusScheduled,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, a)
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

// ListWindow accepts calendar-date bounds (YYYY-MM-DD, to inclusive) or full
// RFC 3339 instants for finer windows. Both bounds are optional.
func (u *AppointmentUseCase) ListWindow(ctx context.Context, from, to, customerID string) ([]entities.Appointment, error) {
	var errs validate.Errors
	var fromT, toT time.Time

	parseBound := func(field, raw string, endOfDay bool) time.Time {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return time.Time{}
		}
		if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
			return t.UTC()
		}
		t, err := time.Parse("2006-01-02", trimmed)
		if err != nil {
			errs = errs.Add(field, "must be a YYYY-MM-DD date or RFC 3339 timestamp")
			return time.Time{}
		}
		if endOfDay {
			t = t.Add(24 * time.Hour)
		}
		return t
	}

	fromT = parseBound("from", from, false)
	toT = parseBound("to", to, true)
	if !fromT.IsZero() && !toT.IsZero() && toT.Before(fromT) {
		errs = errs.Add("to", "must not be before from")
	}
	if err := errs.AsError(); err != nil {
		return nil, err
	}

	return u.repo.ListWindow(ctx, fromT, toT, strings.TrimSpace(customerID))
}

func (u *AppointmentUseCase) Update(ctx context.Context, id string, in UpdateAppointmentInput) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if current.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}

	var errs validate.Errors
	propertyChanged := false
	if in.PropertyID.Null {
		current.PropertyID = ""
	} else if in.PropertyID.Set {
		current.PropertyID = strings.TrimSpace(in.PropertyID.Value)
		propertyChanged = true
	}
	if in.Service.Null {
		errs = errs.Add("service", "cannot be cleared")
	} else if in.Service.Set {
		service := entities.AppointmentService(strings.ToLower(strings.TrimSpace(in.Service.Value)))
		if !service.Valid() {
			errs = errs.Add("service", "must be one of maintenance, repair, estimate_visit, install, other")
		}
		current.Service = service
	}
	if in.StartsAt.Null {
		errs = errs.Add("starts_at", "cannot be cleared")
	} else if in.StartsAt.Set {
		errs, current.StartsAt = timestampField(errs, "starts_at", in.StartsAt.Value)
	}
	if in.EndsAt.Null {
		errs = errs.Add("ends_at", "cannot be cleared")
	} else if in.EndsAt.Set {
		errs, current.EndsAt = timestampField(errs, "ends_at", in.EndsAt.Value)
	}
	if !current.StartsAt.IsZero() && !current.EndsAt.IsZero() && !current.EndsAt.After(current.StartsAt) {
		errs = errs.Add("ends_at", "must be after starts_at")
	}
	if in.Notes.Null {
		current.Notes = ""
	} else if in.Notes.Set {
		errs = validate.OptionalText(errs, "notes", in.Notes.Value, maxAppointmentNotes)
		current.Notes = strings.TrimSpace(in.Notes.Value)
	}
	if in.Status.Null {
		errs = errs.Add("status", "cannot be cleared")
	} else if in.Status.Set {
		status := entities.AppointmentStatus(strings.ToLower(strings.TrimSpace(in.Status.Value)))
		if !status.Valid() {
			errs = errs.Add("status", "must be one of scheduled, completed, canceled")
		}
		current.Status = status
	}
	if err := errs.AsError(); err != nil {
		return entities.Appointment{}, err
	}

	if propertyChanged && current.PropertyID != "" {
		if err := u.checkProperty(ctx, current.PropertyID, current.CustomerID); err != nil {
			return entities.Appointment{}, err
		}
	}

	current.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return updated, nil
}

func (u *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAppointmentID
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAppointmentNotFound
	}
	return nil
}
