package controllers

import (
	"strings"
	"testing"
	"time"

	"github.com/jobsight/backend/internal/models"
)

func TestPaidTotal(t *testing.T) {
	invoiceAmount := 1000.0

	tests := []struct {
		name     string
		payments []models.Payment
		paid     float64
		balance  float64
	}{
		{
			name:     "no payments",
			payments: nil,
			paid:     0,
			balance:  1000,
		},
		{
			name:     "partial payment",
			payments: []models.Payment{{Amount: 250}},
			paid:     250,
			balance:  750,
		},
		{
			name:     "multiple partial payments",
			payments: []models.Payment{{Amount: 250}, {Amount: 150.50}},
			paid:     400.50,
			balance:  599.50,
		},
		{
			name:     "paid in full",
			payments: []models.Payment{{Amount: 600}, {Amount: 400}},
			paid:     1000,
			balance:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paid := paidTotal(tt.payments)
			if paid != tt.paid {
				t.Errorf("Expected paid %v, got %v", tt.paid, paid)
			}
			if balance := invoiceAmount - paid; balance != tt.balance {
				t.Errorf("Expected balance %v, got %v", tt.balance, balance)
			}
		})
	}
}

func TestNewInvoiceNumber(t *testing.T) {
	number := newInvoiceNumber()

	parts := strings.Split(number, "-")
	if len(parts) != 3 {
		t.Fatalf("Expected INV-YYYYMM-SUFFIX shape, got %q", number)
	}
	if parts[0] != "INV" {
		t.Errorf("Expected INV prefix, got %q", parts[0])
	}
	if parts[1] != time.Now().Format("200601") {
		t.Errorf("Expected current year-month %q, got %q", time.Now().Format("200601"), parts[1])
	}
	if parts[2] != strings.ToUpper(parts[2]) || len(parts[2]) == 0 {
		t.Errorf("Expected uppercase suffix, got %q", parts[2])
	}

	// Numbers must not collide within a month.
	if other := newInvoiceNumber(); other == number {
		t.Errorf("Expected distinct invoice numbers, got %q twice", number)
	}
}
