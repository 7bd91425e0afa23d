package validate

import "testing"

func firstMessage(t *testing.T, errs Errors, field string) string {
	t.Helper()
	for _, fe := range errs {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{"formatted US number", "(555) 123-4567", true},
		{"dashed", "555-123-4567", true},
		{"plain digits", "5551234567", true},
		{"international prefix", "+1 555 123 4567", true},
		{"too short", "12345", false},
		{"long enough but few digits", "555-123-CALL", false},
		{"empty", "", false},
		{"over twenty characters", "+1 (555) 123-4567 x9999", false},
	}

	for _, tc := range tests {
		errs := Phone(nil, "phone", tc.input)
		if ok := len(errs) == 0; ok != tc.wantOK {
			t.Errorf("%s: Phone(%q) ok = %v, want %v (%v)", tc.name, tc.input, ok, tc.wantOK, errs)
		}
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		input  string
		wantOK bool
	}{
		{"maria@example.com", true},
		{"first.last+tag@sub.domain.org", true},
		{"", true},
		{"   ", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
	}

	for _, tc := range tests {
		errs := Email(nil, "email", tc.input)
		if ok := len(errs) == 0; ok != tc.wantOK {
			t.Errorf("Email(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
		}
	}
}

func TestRequiredText(t *testing.T) {
	if errs := RequiredText(nil, "name", "  ", 200); len(errs) == 0 {
		t.Error("RequiredText accepted whitespace-only input")
	}
	if errs := RequiredText(nil, "name", "Maria Lopez", 200); len(errs) != 0 {
		t.Errorf("RequiredText rejected valid input: %v", errs)
	}

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	errs := RequiredText(nil, "name", string(long), 200)
	if got := firstMessage(t, errs, "name"); got != "must be at most 200 characters" {
		t.Errorf("RequiredText over-length message = %q", got)
	}
}

func TestOptionalText(t *testing.T) {
	if errs := OptionalText(nil, "notes", "", 500); len(errs) != 0 {
		t.Errorf("OptionalText flagged empty input: %v", errs)
	}
	long := make([]byte, 501)
	for i := range long {
		long[i] = 'x'
	}
	if errs := OptionalText(nil, "notes", string(long), 500); len(errs) == 0 {
		t.Error("OptionalText accepted over-length input")
	}
}

func TestStateCode(t *testing.T) {
	tests := []struct {
		input  string
		wantOK bool
	}{
		{"TX", true},
		{"tx", true},
		{" ca ", true},
		{"DC", true},
		{"ZZ", false},
		{"Texas", false},
		{"", false},
	}

	for _, tc := range tests {
		errs := StateCode(nil, "state", tc.input)
		if ok := len(errs) == 0; ok != tc.wantOK {
			t.Errorf("StateCode(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
		}
	}
}

func TestZipCode(t *testing.T) {
	tests := []struct {
		input  string
		wantOK bool
	}{
		{"75201", true},
		{"75201-1234", true},
		{"7520", false},
		{"752011", false},
		{"75201-12", false},
		{"", false},
	}

	for _, tc := range tests {
		errs := ZipCode(nil, "zip", tc.input)
		if ok := len(errs) == 0; ok != tc.wantOK {
			t.Errorf("ZipCode(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
		}
	}
}

func TestDateYMD(t *testing.T) {
	tests := []struct {
		input  string
		wantOK bool
	}{
		{"2026-03-15", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"03/15/2026", false},
		{"", false},
	}

	for _, tc := range tests {
		errs := DateYMD(nil, "valid_until", tc.input)
		if ok := len(errs) == 0; ok != tc.wantOK {
			t.Errorf("DateYMD(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
		}
	}
}

func TestTaxRate(t *testing.T) {
	tests := []struct {
		input  float64
		wantOK bool
	}{
		{0, true},
		{0.0825, true},
		{1, true},
		{-0.01, false},
		{1.01, false},
	}

	for _, tc := range tests {
		errs := TaxRate(nil, "tax_rate", tc.input)
		if ok := len(errs) == 0; ok != tc.wantOK {
			t.Errorf("TaxRate(%v) ok = %v, want %v", tc.input, ok, tc.wantOK)
		}
	}
}

func TestBoundedNumbers(t *testing.T) {
	if errs := PositiveDecimal(nil, "length_ft", 0, 999.99); len(errs) == 0 {
		t.Error("PositiveDecimal accepted zero")
	}
	if errs := PositiveDecimal(nil, "length_ft", 1000, 999.99); len(errs) == 0 {
		t.Error("PositiveDecimal accepted value above max")
	}
	if errs := PositiveDecimal(nil, "length_ft", 32.5, 999.99); len(errs) != 0 {
		t.Errorf("PositiveDecimal rejected valid value: %v", errs)
	}

	if errs := PositiveInt(nil, "volume_gallons", 0, 9999999); len(errs) == 0 {
		t.Error("PositiveInt accepted zero")
	}
	if errs := PositiveInt(nil, "volume_gallons", 24000, 9999999); len(errs) != 0 {
		t.Errorf("PositiveInt rejected valid value: %v", errs)
	}

	if errs := NonNegativeInt(nil, "unit_price_cents", -1, 99999999); len(errs) == 0 {
		t.Error("NonNegativeInt accepted negative value")
	}
	if errs := NonNegativeInt(nil, "unit_price_cents", 0, 99999999); len(errs) != 0 {
		t.Errorf("NonNegativeInt rejected zero: %v", errs)
	}
}

func TestErrorsAccumulate(t *testing.T) {
	var errs Errors
	errs = RequiredText(errs, "name", "", 200)
	errs = Phone(errs, "phone", "123")
	errs = Email(errs, "email", "bad")

	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "name" || errs[1].Field != "phone" || errs[2].Field != "email" {
		t.Errorf("field order not preserved: %v", errs)
	}
	if errs.AsError() == nil {
		t.Error("AsError returned nil for non-empty list")
	}
	if (Errors{}).AsError() != nil {
		t.Error("AsError returned non-nil for empty list")
	}
}
