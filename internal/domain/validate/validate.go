// Package validate collects field-level input rules shared by the write
// operations. Rules append to an Errors list so callers report every failing
// field in one response instead of stopping at the first.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FieldError points one message at one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is an ordered list of field failures. It satisfies error so
// usecases can return it directly.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a failure and returns the extended list.
func (e Errors) Add(field, message string) Errors {
	return append(e, FieldError{Field: field, Message: message})
}

// AsError returns nil when no rule failed, so usecases can write
// `return validate.Errors.AsError(errs)` style checks as `return errs.AsError()`.
func (e Errors) AsError() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	digitRun     = regexp.MustCompile(`\d{10,}`)
)

var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true,
}

// RequiredText checks a trimmed value is present and within maxLen.
func RequiredText(errs Errors, field, value string, maxLen int) Errors {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.Add(field, "is required")
	}
	if len(trimmed) > maxLen {
		return errs.Add(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return errs
}

// OptionalText checks length only; empty means the field was not provided.
func OptionalText(errs Errors, field, value string, maxLen int) Errors {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs
	}
	if len(trimmed) > maxLen {
		return errs.Add(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return errs
}

// Phone requires 10 to 20 characters as typed, and at least 10 consecutive
// digits once formatting characters are stripped. "(555) 123-4567" passes,
// "12345" and "555-123" do not.
func Phone(errs Errors, field, value string) Errors {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.Add(field, "is required")
	}
	if len(trimmed) < 10 || len(trimmed) > 20 {
		return errs.Add(field, "must be between 10 and 20 characters")
	}

	stripped := trimmed
	for _, r := range []string{" ", "-", "(", ")", ".", "+"} {
		stripped = strings.ReplaceAll(stripped, r, "")
	}
	if !digitRun.MatchString(stripped) {
		return errs.Add(field, "must contain at least 10 digits")
	}
	return errs
}

// Email accepts an empty value as "not provided"; a non-empty value must be
// a plausible address.
func Email(errs Errors, field, value string) Errors {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs
	}
	if len(trimmed) > 254 || !emailPattern.MatchString(trimmed) {
		return errs.Add(field, "must be a valid email address")
	}
	return errs
}

// StateCode requires a two-letter US state or DC abbreviation.
func StateCode(errs Errors, field, value string) Errors {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return errs.Add(field, "is required")
	}
	if !usStates[trimmed] {
		return errs.Add(field, "must be a two-letter state code")
	}
	return errs
}

// ZipCode requires 5-digit or ZIP+4 form.
func ZipCode(errs Errors, field, value string) Errors {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.Add(field, "is required")
	}
	if !zipPattern.MatchString(trimmed) {
		return errs.Add(field, "must be a valid ZIP code")
	}
	return errs
}

// DateYMD requires a real calendar date in YYYY-MM-DD form. time.Parse
// rejects out-of-range components like 2024-02-30.
func DateYMD(errs Errors, field, value string) Errors {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.Add(field, "is required")
	}
	if _, err := time.Parse("2006-01-02", trimmed); err != nil {
		return errs.Add(field, "must be a date in YYYY-MM-DD format")
	}
	return errs
}

// TaxRate requires a fractional rate, 0 through 1 inclusive.
func TaxRate(errs Errors, field string, value float64) Errors {
	if value < 0 || value > 1 {
		return errs.Add(field, "must be between 0 and 1")
	}
	return errs
}

// PositiveDecimal requires 0 < value <= max.
func PositiveDecimal(errs Errors, field string, value, max float64) Errors {
	if value <= 0 {
		return errs.Add(field, "must be positive")
	}
	if value > max {
		return errs.Add(field, fmt.Sprintf("must be at most %v", max))
	}
	return errs
}

// PositiveInt requires 0 < value <= max.
func PositiveInt(errs Errors, field string, value, max int64) Errors {
	if value <= 0 {
		return errs.Add(field, "must be positive")
	}
	if value > max {
		return errs.Add(field, fmt.Sprintf("must be at most %d", max))
	}
	return errs
}

// NonNegativeInt requires 0 <= value <= max.
func NonNegativeInt(errs Errors, field string, value, max int64) Errors {
	if value < 0 {
		return errs.Add(field, "must not be negative")
	}
	if value > max {
		return errs.Add(field, fmt.Sprintf("must be at most %d", max))
	}
	return errs
}
