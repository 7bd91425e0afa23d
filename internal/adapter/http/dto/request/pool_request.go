package request

import "aquaops/internal/domain/patch"

// PoolCreateRequest accepts dimensions as JSON numbers or numeric strings.
// volume_gallons is optional; when absent it is derived from the dimensions.
type PoolCreateRequest struct {
	PropertyID     string       `json:"property_id"`
	Type           string       `json:"type"`
	Surface        string       `json:"surface"`
	LengthFt       patch.Number `json:"length_ft"`
	WidthFt        patch.Number `json:"width_ft"`
	ShallowDepthFt patch.Number `json:"shallow_depth_ft"`
	DeepDepthFt    patch.Number `json:"deep_depth_ft"`
	VolumeGallons  patch.Int    `json:"volume_gallons"`
	EquipmentNotes string       `json:"equipment_notes"`
}

type PoolUpdateRequest struct {
	Type           patch.String `json:"type"`
	Surface        patch.String `json:"surface"`
	LengthFt       patch.Number `json:"length_ft"`
	WidthFt        patch.Number `json:"width_ft"`
	ShallowDepthFt patch.Number `json:"shallow_depth_ft"`
	DeepDepthFt    patch.Number `json:"deep_depth_ft"`
	VolumeGallons  patch.Int    `json:"volume_gallons"`
	EquipmentNotes patch.String `json:"equipment_notes"`
}
