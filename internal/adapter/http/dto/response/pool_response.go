package response

import (
	"aquaops/internal/domain/entities"
	"time"
)

type PoolResponse struct {
	ID             string    `json:"id"`
	PropertyID     string    `json:"property_id"`
	Type           string    `json:"type"`
	Surface        string    `json:"surface,omitempty"`
	LengthFt       float64   `json:"length_ft,omitempty"`
	WidthFt        float64   `json:"width_ft,omitempty"`
	ShallowDepthFt float64   `json:"shallow_depth_ft,omitempty"`
	DeepDepthFt    float64   `json:"deep_depth_ft,omitempty"`
	VolumeGallons  int64     `json:"volume_gallons,omitempty"`
	EquipmentNotes string    `json:"equipment_notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromPool(p entities.Pool) PoolResponse {
	return PoolResponse{
		ID:             p.ID,
		PropertyID:     p.PropertyID,
		Type:           string(p.Type),
		Surface:        string(p.Surface),
		LengthFt:       p.LengthFt,
		WidthFt:        p.WidthFt,
		ShallowDepthFt: p.ShallowDepthFt,
		DeepDepthFt:    p.DeepDepthFt,
		VolumeGallons:  p.VolumeGallons,
		EquipmentNotes: p.EquipmentNotes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromPools(ps []entities.Pool) []PoolResponse {
	out := make([]PoolResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPool(p))
	}
	return out
}
