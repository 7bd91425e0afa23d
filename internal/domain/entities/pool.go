package entities

import "time"

type PoolType string

const (
	PoolTypeInground    PoolType = "inground"
	PoolTypeAboveGround PoolType = "above_ground"
	PoolTypeSpa         PoolType = "spa"
	PoolTypeOther       PoolType = "other"
)

func (t PoolType) Valid() bool {
	switch t {
	case PoolTypeInground, PoolTypeAboveGround, PoolTypeSpa, PoolTypeOther:
		return true
	}
	return false
}

type PoolSurface string

const (
	PoolSurfacePlaster    PoolSurface = "plaster"
	PoolSurfacePebble     PoolSurface = "pebble"
	PoolSurfaceTile       PoolSurface = "tile"
	PoolSurfaceFiberglass PoolSurface = "fiberglass"
	PoolSurfaceVinyl      PoolSurface = "vinyl"
	PoolSurfaceOther      PoolSurface = "other"
)

func (s PoolSurface) Valid() bool {
	switch s {
	case PoolSurfacePlaster, PoolSurfacePebble, PoolSurfaceTile, PoolSurfaceFiberglass, PoolSurfaceVinyl, PoolSurfaceOther:
		return true
	}
	return false
}

// Pool is a body of water at a Property.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (property_id-index): property_id
//
// Dimensions are in feet and optional; zero means "not recorded".
// VolumeGallons is supplied directly or estimated from the dimensions when
// they allow it.
type Pool struct {
	ID             string      `json:"id"`
	PropertyID     string      `json:"property_id"`
	Type           PoolType    `json:"type"`
	Surface        PoolSurface `json:"surface,omitempty"`
	LengthFt       float64     `json:"length_ft,omitempty"`
	WidthFt        float64     `json:"width_ft,omitempty"`
	ShallowDepthFt float64     `json:"shallow_depth_ft,omitempty"`
	DeepDepthFt    float64     `json:"deep_depth_ft,omitempty"`
	VolumeGallons  int64       `json:"volume_gallons,omitempty"`
	EquipmentNotes string      `json:"equipment_notes,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
