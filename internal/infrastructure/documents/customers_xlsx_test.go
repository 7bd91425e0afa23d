package documents

import (
	"bytes"
	"testing"
	"time"

	"aquaops/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

func TestBuildCustomersXLSX(t *testing.T) {
	customers := []entities.Customer{
		{ID: "c-1", Name: "Dana Rivers", Phone: "(555) 123-4567", Email: "dana@example.com", LeadSource: "referral", CreatedAt: time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)},
		{ID: "c-2", Name: "Sam Ortiz", Phone: "555.987.6543", CreatedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)},
	}

	result, err := BuildCustomersXLSX(customers)
	if err != nil {
		t.Fatalf("BuildCustomersXLSX() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("BuildCustomersXLSX() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Customers" {
		t.Errorf("expected sheet name 'Customers', got %v", sheets)
	}

	header, _ := f.GetCellValue("Customers", "A1")
	if header != "Name" {
		t.Errorf("expected header 'Name', got %q", header)
	}
	name, _ := f.GetCellValue("Customers", "A2")
	if name != "Dana Rivers" {
		t.Errorf("expected first row 'Dana Rivers', got %q", name)
	}
	phone, _ := f.GetCellValue("Customers", "B3")
	if phone != "555.987.6543" {
		t.Errorf("expected phone '555.987.6543', got %q", phone)
	}
}

func TestBuildCustomersXLSX_Empty(t *testing.T) {
	result, err := BuildCustomersXLSX(nil)
	if err != nil {
		t.Fatalf("BuildCustomersXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Customers")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected only the header row, got %d rows", len(rows))
	}
}
