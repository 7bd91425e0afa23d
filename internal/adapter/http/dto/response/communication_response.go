package response

import (
	"aquaops/internal/domain/entities"
	"aquaops/pkg/format"
	"time"
)

type CommunicationResponse struct {
	ID                string    `json:"id"`
	CustomerID        string    `json:"customer_id"`
	Type              string    `json:"type"`
	Direction         string    `json:"direction"`
	Summary           string    `json:"summary"`
	OccurredAt        time.Time `json:"occurred_at"`
	OccurredAtDisplay string    `json:"occurred_at_display"`
	LoggedBy          string    `json:"logged_by,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromCommunication(e entities.Communication) CommunicationResponse {
	loc := format.Location()
	return CommunicationResponse{
		ID:                e.ID,
		CustomerID:        e.CustomerID,
		Type:              string(e.Type),
		Direction:         string(e.Direction),
		Summary:           e.Summary,
		OccurredAt:        e.OccurredAt,
		OccurredAtDisplay: format.DayLabel(e.OccurredAt, time.Now(), loc) + ", " + format.TimeOfDay(e.OccurredAt, loc),
		LoggedBy:          e.LoggedBy,
		CreatedAt:         e.CreatedAt,
	}
}

// CommunicationPageResponse is one page of the timeline, newest first.
type CommunicationPageResponse struct {
	Items      []CommunicationResponse `json:"items"`
	HasMore    bool                    `json:"has_more"`
	NextCursor string                  `json:"next_cursor,omitempty"`
}

func FromCommunicationPage(p entities.CommunicationPage) CommunicationPageResponse {
	items := make([]CommunicationResponse, 0, len(p.Items))
	for _, e := range p.Items {
		items = append(items, FromCommunication(e))
	}
	return CommunicationPageResponse{
		Items:      items,
		HasMore:    p.HasMore,
		NextCursor: p.NextCursor,
	}
}
