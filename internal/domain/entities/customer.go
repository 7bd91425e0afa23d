package entities

import "time"

// Known lead sources. LeadSource is free text up to 100 chars; these are the
// values the intake form offers.
const (
	LeadSourceReferral       = "referral"
	LeadSourceGoogleSearch   = "google_search"
	LeadSourceWebsite        = "website"
	LeadSourceYardSign       = "yard_sign"
	LeadSourceSocialMedia    = "social_media"
	LeadSourceRepeatCustomer = "repeat_customer"
	LeadSourceOther          = "other"
)

// Customer is a client of the pool-service business.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Phone is required and kept as entered; validation guarantees it carries at
// least 10 digits once separators are stripped. Email and LeadSource are
// optional; empty string means "no value".
type Customer struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	LeadSource string    `json:"lead_source,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
