package interfaces

import (
	"context"
	"time"

	"aquaops/internal/domain/entities"
)

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListWindow(ctx context.Context, from, to time.Time, customerID string) ([]entities.Appointment, error)
	Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
