package interfaces

import (
	"aquaops/internal/domain/entities"
	"context"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The admin backend must be able to:
//   - create an estimate with its line items in one write
//   - list estimates for a customer or by status
//   - replace content fields and recomputed totals on an existing estimate
//   - move an estimate through its status lifecycle

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context, customerID string, status entities.EstimateStatus) ([]entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
	Delete(ctx context.Context, id string) (bool, error)
}
