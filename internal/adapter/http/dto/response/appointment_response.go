package response

import (
	"aquaops/internal/domain/entities"
	"aquaops/pkg/format"
	"time"
)

// AppointmentResponse carries the stored window plus the display strings the
// calendar views render: a relative day label, a local time range and the
// visit length.
type AppointmentResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	PropertyID string    `json:"property_id,omitempty"`
	Service    string    `json:"service"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	Notes      string    `json:"notes,omitempty"`
	Status     string    `json:"status"`
	DayLabel   string    `json:"day_label"`
	TimeRange  string    `json:"time_range"`
	Duration   string    `json:"duration"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	loc := format.Location()
	return AppointmentResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		PropertyID: a.PropertyID,
		Service:    string(a.Service),
		StartsAt:   a.StartsAt,
		EndsAt:     a.EndsAt,
		Notes:      a.Notes,
		Status:     string(a.Status),
		DayLabel:   format.DayLabel(a.StartsAt, time.Now(), loc),
		TimeRange:  format.TimeRange(a.StartsAt, a.EndsAt, loc),
		Duration:   format.Duration(a.EndsAt.Sub(a.StartsAt)),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func FromAppointments(as []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAppointment(a))
	}
	return out
}
