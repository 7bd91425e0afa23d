package entities

import "time"

type AppointmentService string

const (
	AppointmentServiceMaintenance   AppointmentService = "maintenance"
	AppointmentServiceRepair        AppointmentService = "repair"
	AppointmentServiceEstimateVisit AppointmentService = "estimate_visit"
	AppointmentServiceInstall       AppointmentService = "install"
	AppointmentServiceOther         AppointmentService = "other"
)

func (s AppointmentService) Valid() bool {
	switch s {
	case AppointmentServiceMaintenance, AppointmentServiceRepair, AppointmentServiceEstimateVisit, AppointmentServiceInstall, AppointmentServiceOther:
		return true
	}
	return false
}

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCanceled:
		return true
	}
	return false
}

// Appointment is a scheduled visit on the service calendar.
//
// Storage model (DynamoDB):
//   - PK: id
//   - window listings filter on starts_at
//
// Unlike estimates, appointment status carries no transition table; any of
// the three values may be set directly.
type Appointment struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	PropertyID string             `json:"property_id,omitempty"`
	Service    AppointmentService `json:"service"`
	StartsAt   time.Time          `json:"starts_at"`
	EndsAt     time.Time          `json:"ends_at"`
	Notes      string             `json:"notes,omitempty"`
	Status     AppointmentStatus  `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
