package interfaces

import (
	"aquaops/internal/domain/entities"
	"context"
)

// IPoolRepository abstracts DynamoDB persistence for Pool.

type IPoolRepository interface {
	Create(ctx context.Context, p entities.Pool) (entities.Pool, error)
	GetByID(ctx context.Context, id string) (entities.Pool, error)
	ListByPropertyID(ctx context.Context, propertyID string) ([]entities.Pool, error)
	Update(ctx context.Context, p entities.Pool) (entities.Pool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
