package interfaces

import (
	"aquaops/internal/domain/entities"
	"context"
)

// ICommunicationRepository abstracts DynamoDB persistence for Communication.
// Listing is cursor-paged, newest first.

type ICommunicationRepository interface {
	Create(ctx context.Context, c entities.Communication) (entities.Communication, error)
	List(ctx context.Context, f entities.CommunicationFilter) (entities.CommunicationPage, error)
	Delete(ctx context.Context, id string) (bool, error)
}
