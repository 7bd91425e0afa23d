package usecase

import (
	"aquaops/internal/domain/entities"
	"aquaops/internal/domain/validate"
	"aquaops/internal/usecase/interfaces"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCommunicationNotFound  = errors.New("communication not found")
	ErrInvalidCommunicationID = errors.New("invalid communication id")
)

const (
	maxCommunicationSummary      = 2000
	defaultCommunicationPageSize = 20
	maxCommunicationPageSize     = 100
)

// ICommunicationUseCase exposes the customer activity log. Entries record
// calls, texts and emails after the fact; nothing here sends anything.

type ICommunicationUseCase interface {
	Log(ctx context.Context, in LogCommunicationInput) (entities.Communication, error)
	List(ctx context.Context, in ListCommunicationsInput) (entities.CommunicationPage, error)
	Delete(ctx context.Context, id string) error
}

type LogCommunicationInput struct {
	CustomerID string
	Type       string
	Direction  string
	Summary    string
	OccurredAt string
	LoggedBy   string
}

// ListCommunicationsInput carries raw filter values; From and To are
// calendar dates (YYYY-MM-DD), To inclusive.
type ListCommunicationsInput struct {
	CustomerID string
	Type       string
	Direction  string
	From       string
	To         string
	Search     string
	Limit      int
	Cursor     string
}

type CommunicationUseCase struct {
	repo         interfaces.ICommunicationRepository
	customerRepo interfaces.ICustomerRepository
}

var _ ICommunicationUseCase = (*CommunicationUseCase)(nil)

func NewCommunicationUseCase(repo interfaces.ICommunicationRepository, customerRepo interfaces.ICustomerRepository) *CommunicationUseCase {
	return &CommunicationUseCase{repo: repo, customerRepo: customerRepo}
}

func (u *CommunicationUseCase) Log(ctx context.Context, in LogCommunicationInput) (entities.Communication, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return entities.Communication{}, ErrInvalidCustomerID
	}

	var errs validate.Errors
	commType := entities.CommunicationType(strings.ToLower(strings.TrimSpace(in.Type)))
	if !commType.Valid() {
		errs = errs.Add("type", "must be one of call, text, email")
	}
	direction := entities.CommunicationDirection(strings.ToLower(strings.TrimSpace(in.Direction)))
	if !direction.Valid() {
		errs = errs.Add("direction", "must be inbound or outbound")
	}
	errs = validate.RequiredText(errs, "summary", in.Summary, maxCommunicationSummary)
	errs = validate.OptionalText(errs, "logged_by", in.LoggedBy, 200)

	occurredAt := time.Now().UTC()
	if raw := strings.TrimSpace(in.OccurredAt); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			errs = errs.Add("occurred_at", "must be an RFC 3339 timestamp")
		} else {
			occurredAt = t.UTC()
		}
	}
	if err := errs.AsError(); err != nil {
		return entities.Communication{}, err
	}

	owner, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Communication{}, err
	}
	if owner.ID == "" {
		return entities.Communication{}, ErrCustomerNotFound
	}

	c := entities.Communication{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Type:       commType,
		Direction:  direction,
		Summary:    strings.TrimSpace(in.Summary),
		OccurredAt: occurredAt,
		LoggedBy:   strings.TrimSpace(in.LoggedBy),
		CreatedAt:  time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *CommunicationUseCase) List(ctx context.Context, in ListCommunicationsInput) (entities.CommunicationPage, error) {
	var errs validate.Errors
	f := entities.CommunicationFilter{
		CustomerID: strings.TrimSpace(in.CustomerID),
		Search:     strings.TrimSpace(in.Search),
	}

	if raw := strings.ToLower(strings.TrimSpace(in.Type)); raw != "" {
		f.Type = entities.CommunicationType(raw)
		if !f.Type.Valid() {
			errs = errs.Add("type", "must be one of call, text, email")
		}
	}
	if raw := strings.ToLower(strings.TrimSpace(in.Direction)); raw != "" {
		f.Direction = entities.CommunicationDirection(raw)
		if !f.Direction.Valid() {
			errs = errs.Add("direction", "must be inbound or outbound")
		}
	}
	if raw := strings.TrimSpace(in.From); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			errs = errs.Add("from", "must be a date in YYYY-MM-DD format")
		} else {
			f.From = t
		}
	}
	if raw := strings.TrimSpace(in.To); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			errs = errs.Add("to", "must be a date in YYYY-MM-DD format")
		} else {
			// Inclusive date bound: everything before the following midnight.
			f.To = t.Add(24 * time.Hour)
		}
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		errs = errs.Add("to", "must not be before from")
	}

	// The page cursor is opaque to clients but must at least be the base64
	// JSON envelope this service hands out. The repository issues cursors
	// with RawURLEncoding, so the gate decodes with the same alphabet.
	if raw := strings.TrimSpace(in.Cursor); raw != "" {
		b, err := base64.RawURLEncoding.DecodeString(raw)
		if err != nil || !json.Valid(b) {
			errs = errs.Add("cursor", "is not a valid page cursor")
		} else {
			f.Cursor = raw
		}
	}
	if err := errs.AsError(); err != nil {
		return entities.CommunicationPage{}, err
	}

	limit := in.Limit
	if limit <= 0 {
		limit = defaultCommunicationPageSize
	}
	if limit > maxCommunicationPageSize {
		limit = maxCommunicationPageSize
	}
	f.Limit = int32(limit)

	return u.repo.List(ctx, f)
}

func (u *CommunicationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCommunicationID
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCommunicationNotFound
	}
	return nil
}
