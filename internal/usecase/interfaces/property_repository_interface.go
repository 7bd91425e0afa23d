package interfaces

import (
	"aquaops/internal/domain/entities"
	"context"
)

// IPropertyRepository abstracts DynamoDB persistence for Property.
//
// Properties hang off a customer; listing goes through the customer_id GSI.

type IPropertyRepository interface {
	Create(ctx context.Context, p entities.Property) (entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Property, error)
	Update(ctx context.Context, p entities.Property) (entities.Property, error)
	Delete(ctx context.Context, id string) (bool, error)
}
