package usecase

import (
	"aquaops/internal/domain/entities"
	"aquaops/internal/domain/patch"
	"aquaops/internal/domain/pricing"
	"aquaops/internal/domain/validate"
	"aquaops/internal/usecase/interfaces"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPoolNotFound  = errors.New("pool not found")
	ErrInvalidPoolID = errors.New("invalid pool id")
)

const (
	maxDimensionFt    = 999.99
	maxVolumeGallons  = 9999999
	maxEquipmentNotes = 1000
)

// IPoolUseCase exposes pool registry operations.
//
// Volume handling: an explicitly supplied gallon count always wins; when the
// caller leaves it out the usecase derives one from the dimensions where
// possible, so list views can show a capacity without the office staff doing
// arithmetic.

type IPoolUseCase interface {
	Create(ctx context.Context, in CreatePoolInput) (entities.Pool, error)
	GetByID(ctx context.Context, id string) (entities.Pool, error)
	ListByPropertyID(ctx context.Context, propertyID string) ([]entities.Pool, error)
	Update(ctx context.Context, id string, in UpdatePoolInput) (entities.Pool, error)
	Delete(ctx context.Context, id string) error
}

// CreatePoolInput uses patch numerics so numeric-looking strings from the
// intake form parse the same as JSON numbers.
type CreatePoolInput struct {
	PropertyID     string
	Type           string
	Surface        string
	LengthFt       patch.Number
	WidthFt        patch.Number
	ShallowDepthFt patch.Number
	DeepDepthFt    patch.Number
	VolumeGallons  patch.Int
	EquipmentNotes string
}

type UpdatePoolInput struct {
	Type           patch.String
	Surface        patch.String
	LengthFt       patch.Number
	WidthFt        patch.Number
	ShallowDepthFt patch.Number
	DeepDepthFt    patch.Number
	VolumeGallons  patch.Int
	EquipmentNotes patch.String
}

type PoolUseCase struct {
	repo         interfaces.IPoolRepository
	propertyRepo interfaces.IPropertyRepository
}

var _ IPoolUseCase = (*PoolUseCase)(nil)

func NewPoolUseCase(repo interfaces.IPoolRepository, propertyRepo interfaces.IPropertyRepository) *PoolUseCase {
	return &PoolUseCase{repo: repo, propertyRepo: propertyRepo}
}

func dimensionField(errs validate.Errors, field string, n patch.Number) (validate.Errors, float64) {
	if n.Invalid {
		return errs.Add(field, "must be a number"), 0
	}
	if !n.Set {
		return errs, 0
	}
	return validate.PositiveDecimal(errs, field, n.Value, maxDimensionFt), n.Value
}

func (u *PoolUseCase) Create(ctx context.Context, in CreatePoolInput) (entities.Pool, error) {
	propertyID := strings.TrimSpace(in.PropertyID)
	if propertyID == "" {
		return entities.Pool{}, ErrInvalidPropertyID
	}

	var errs validate.Errors
	poolType := entities.PoolType(strings.ToLower(strings.TrimSpace(in.Type)))
	if !poolType.Valid() {
		errs = errs.Add("type", "must be one of inground, above_ground, spa, other")
	}
	surface := entities.PoolSurface(strings.ToLower(strings.TrimSpace(in.Surface)))
	if surface != "" && !surface.Valid() {
		errs = errs.Add("surface", "must be a known surface type")
	}

	var length, width, shallow, deep float64
	errs, length = dimensionField(errs, "length_ft", in.LengthFt)
	errs, width = dimensionField(errs, "width_ft", in.WidthFt)
	errs, shallow = dimensionField(errs, "shallow_depth_ft", in.ShallowDepthFt)
	errs, deep = dimensionField(errs, "deep_depth_ft", in.DeepDepthFt)

	var volume int64
	if in.VolumeGallons.Invalid {
		errs = errs.Add("volume_gallons", "must be a whole number")
	} else if in.VolumeGallons.Set {
		errs = validate.PositiveInt(errs, "volume_gallons", in.VolumeGallons.Value, maxVolumeGallons)
		volume = in.VolumeGallons.Value
	}
	errs = validate.OptionalText(errs, "equipment_notes", in.EquipmentNotes, maxEquipmentNotes)
	if err := errs.AsError(); err != nil {
		return entities.Pool{}, err
	}

	if volume == 0 {
		if derived, ok := pricing.PoolVolumeGallons(length, width, shallow, deep); ok {
			volume = derived
		}
	}

	parent, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return entities.Pool{}, err
	}
	if parent.ID == "" {
		return entities.Pool{}, ErrPropertyNotFound
	}

	now := time.Now().UTC()
	p := entities.Pool{
		ID:             uuid.NewString(),
		PropertyID:     propertyID,
		Type:           poolType,
		Surface:        surface,
		LengthFt:       length,
		WidthFt:        width,
		ShallowDepthFt: shallow,
		DeepDepthFt:    deep,
		VolumeGallons:  volume,
		EquipmentNotes: strings.TrimSpace(in.EquipmentNotes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, p)
}

func (u *PoolUseCase) GetByID(ctx context.Context, id string) (entities.Pool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pool{}, ErrInvalidPoolID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Pool{}, err
	}
	if p.ID == "" {
		return entities.Pool{}, ErrPoolNotFound
	}
	return p, nil
}

func (u *PoolUseCase) ListByPropertyID(ctx context.Context, propertyID string) ([]entities.Pool, error) {
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return nil, ErrInvalidPropertyID
	}
	return u.repo.ListByPropertyID(ctx, propertyID)
}

func (u *PoolUseCase) Update(ctx context.Context, id string, in UpdatePoolInput) (entities.Pool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pool{}, ErrInvalidPoolID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Pool{}, err
	}
	if current.ID == "" {
		return entities.Pool{}, ErrPoolNotFound
	}

	var errs validate.Errors
	if in.Type.Null {
		errs = errs.Add("type", "cannot be cleared")
	} else if in.Type.Set {
		poolType := entities.PoolType(strings.ToLower(strings.TrimSpace(in.Type.Value)))
		if !poolType.Valid() {
			errs = errs.Add("type", "must be one of inground, above_ground, spa, other")
		}
		current.Type = poolType
	}
	if in.Surface.Null {
		current.Surface = ""
	} else if in.Surface.Set {
		surface := entities.PoolSurface(strings.ToLower(strings.TrimSpace(in.Surface.Value)))
		if !surface.Valid() {
			errs = errs.Add("surface", "must be a known surface type")
		}
		current.Surface = surface
	}

	dimsChanged := false
	applyDim := func(field string, n patch.Number, dst *float64) {
		switch {
		case n.Invalid:
			errs = errs.Add(field, "must be a number")
		case n.Null:
			*dst = 0
			dimsChanged = true
		case n.Set:
			errs = validate.PositiveDecimal(errs, field, n.Value, maxDimensionFt)
			*dst = n.Value
			dimsChanged = true
		}
	}
	applyDim("length_ft", in.LengthFt, &current.LengthFt)
	applyDim("width_ft", in.WidthFt, &current.WidthFt)
	applyDim("shallow_depth_ft", in.ShallowDepthFt, &current.ShallowDepthFt)
	applyDim("deep_depth_ft", in.DeepDepthFt, &current.DeepDepthFt)

	explicitVolume := false
	switch {
	case in.VolumeGallons.Invalid:
		errs = errs.Add("volume_gallons", "must be a whole number")
	case in.VolumeGallons.Null:
		current.VolumeGallons = 0
	case in.VolumeGallons.Set:
		errs = validate.PositiveInt(errs, "volume_gallons", in.VolumeGallons.Value, maxVolumeGallons)
		current.VolumeGallons = in.VolumeGallons.Value
		explicitVolume = true
	}

	if in.EquipmentNotes.Null {
		current.EquipmentNotes = ""
	} else if in.EquipmentNotes.Set {
		errs = validate.OptionalText(errs, "equipment_notes", in.EquipmentNotes.Value, maxEquipmentNotes)
		current.EquipmentNotes = strings.TrimSpace(in.EquipmentNotes.Value)
	}
	if err := errs.AsError(); err != nil {
		return entities.Pool{}, err
	}

	// Changed dimensions invalidate a derived volume; only an explicit gallon
	// count in the same request survives them.
	if !explicitVolume && (dimsChanged || in.VolumeGallons.Null) {
		derived, ok := pricing.PoolVolumeGallons(current.LengthFt, current.WidthFt, current.ShallowDepthFt, current.DeepDepthFt)
		if !ok {
			derived = 0
		}
		current.VolumeGallons = derived
	}

	current.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Pool{}, err
	}
	if updated.ID == "" {
		return entities.Pool{}, ErrPoolNotFound
	}
	return updated, nil
}

func (u *PoolUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPoolID
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPoolNotFound
	}
	return nil
}
