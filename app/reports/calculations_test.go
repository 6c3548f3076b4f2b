package reports

import "testing"

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		obtained float64
		max      float64
		want     float64
	}{
		{"full marks", 100, 100, 100},
		{"rounds to two decimals", 125, 150, 83.33},
		{"two thirds", 2, 3, 66.67},
		{"zero max yields zero", 50, 0, 0},
		{"zero obtained", 0, 80, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.obtained, tt.max); got != tt.want {
				t.Errorf("Percentage(%v, %v) = %v, want %v", tt.obtained, tt.max, got, tt.want)
			}
		})
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{75, "A"},
		{74.99, "B"},
		{60, "B"},
		{59.99, "C"},
		{40, "C"},
		{39.99, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := GradeFor(tt.percentage); got != tt.want {
			t.Errorf("GradeFor(%v) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestReceiptTotals(t *testing.T) {
	tests := []struct {
		name          string
		paidNow       float64
		alreadyPaid   bool
		totalPaid     float64
		totalUnpaid   float64
		wantDisplayed float64
		wantRemaining float64
	}{
		{
			// The invoice amount is already inside totalPaid.
			name:    "already paid invoice",
			paidNow: 500, alreadyPaid: true,
			totalPaid: 2000, totalUnpaid: 300,
			wantDisplayed: 2000, wantRemaining: 0,
		},
		{
			name:    "payment being recorded now",
			paidNow: 500, alreadyPaid: false,
			totalPaid: 1500, totalUnpaid: 800,
			wantDisplayed: 2000, wantRemaining: 300,
		},
		{
			name:    "remaining never negative",
			paidNow: 1000, alreadyPaid: false,
			totalPaid: 0, totalUnpaid: 400,
			wantDisplayed: 1000, wantRemaining: 0,
		},
		{
			name:    "no other fees",
			paidNow: 250, alreadyPaid: true,
			totalPaid: 250, totalUnpaid: 0,
			wantDisplayed: 250, wantRemaining: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			displayed, remaining := ReceiptTotals(tt.paidNow, tt.alreadyPaid, tt.totalPaid, tt.totalUnpaid)
			if displayed != tt.wantDisplayed {
				t.Errorf("displayed total paid = %v, want %v", displayed, tt.wantDisplayed)
			}
			if remaining != tt.wantRemaining {
				t.Errorf("remaining = %v, want %v", remaining, tt.wantRemaining)
			}
		})
	}
}

func TestReportCardFilename(t *testing.T) {
	got := ReportCardFilename("Aarav Sharma", "Term 1")
	want := "report_card_Aarav_Sharma_Term_1.pdf"
	if got != want {
		t.Errorf("ReportCardFilename = %q, want %q", got, want)
	}
}

func TestReceiptFilename(t *testing.T) {
	got := ReceiptFilename("42")
	want := "receipt_fee_42.pdf"
	if got != want {
		t.Errorf("ReceiptFilename = %q, want %q", got, want)
	}
}
