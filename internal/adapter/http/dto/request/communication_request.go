package request

// CommunicationLogRequest records a touch-point after the fact. occurred_at
// is RFC 3339 and defaults to now when omitted.
type CommunicationLogRequest struct {
	CustomerID string `json:"customer_id"`
	Type       string `json:"type"`
	Direction  string `json:"direction"`
	Summary    string `json:"summary"`
	OccurredAt string `json:"occurred_at"`
	LoggedBy   string `json:"logged_by"`
}
