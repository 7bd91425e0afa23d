package entities

import "time"

type CommunicationType string

const (
	CommunicationTypeCall  CommunicationType = "call"
	CommunicationTypeText  CommunicationType = "text"
	CommunicationTypeEmail CommunicationType = "email"
)

func (t CommunicationType) Valid() bool {
	switch t {
	case CommunicationTypeCall, CommunicationTypeText, CommunicationTypeEmail:
		return true
	}
	return false
}

type CommunicationDirection string

const (
	CommunicationInbound  CommunicationDirection = "inbound"
	CommunicationOutbound CommunicationDirection = "outbound"
)

func (d CommunicationDirection) Valid() bool {
	return d == CommunicationInbound || d == CommunicationOutbound
}

// Communication is one logged customer touch-point (a call, text or email).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-occurred_at-index): customer_id + occurred_at,
//     queried newest-first for the per-customer timeline
type Communication struct {
	ID         string                 `json:"id"`
	CustomerID string                 `json:"customer_id"`
	Type       CommunicationType      `json:"type"`
	Direction  CommunicationDirection `json:"direction"`
	Summary    string                 `json:"summary"`
	OccurredAt time.Time              `json:"occurred_at"`
	LoggedBy   string                 `json:"logged_by,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// CommunicationFilter narrows a communications listing. Zero values mean
// "no constraint"; Cursor resumes a previous page.
type CommunicationFilter struct {
	CustomerID string
	Type       CommunicationType
	Direction  CommunicationDirection
	From       time.Time
	To         time.Time
	Search     string
	Limit      int32
	Cursor     string
}

// CommunicationPage is one page of a cursor-paginated listing, newest first.
type CommunicationPage struct {
	Items      []Communication `json:"items"`
	HasMore    bool            `json:"has_more"`
	NextCursor string          `json:"next_cursor,omitempty"`
}
