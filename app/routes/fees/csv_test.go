package fees

import (
	"strings"
	"testing"
	"time"

	"github.com/LUCY-sama29/school-erp/app/models"
)

func TestWriteFeesCSV(t *testing.T) {
	section := "B"
	fees := []*models.Fee{
		{
			StudentName: "Aarav Sharma",
			ClassName:   "Grade 5",
			Section:     &section,
			Amount:      1000.5,
			Status:      models.FeePaid,
			CreatedAt:   time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			StudentName: "Meera Patel",
			ClassName:   "Grade 6",
			Amount:      750,
			Status:      models.FeeUnpaid,
			CreatedAt:   time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		},
	}

	var buf strings.Builder
	if err := WriteFeesCSV(&buf, fees); err != nil {
		t.Fatalf("WriteFeesCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Student,Class,Amount,Status,Date" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Aarav Sharma,Grade 5 B,1000.50,paid,2026-03-15" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "Meera Patel,Grade 6,750.00,unpaid,2026-03-16" {
		t.Errorf("row 2 = %q", lines[2])
	}
}
