package attendance

import (
	"strings"
	"testing"
	"time"

	"github.com/LUCY-sama29/school-erp/app/models"
)

func TestWriteAttendanceCSV(t *testing.T) {
	section := "A"
	classID := "c1"
	records := []*models.Attendance{
		{
			StudentID: "s1",
			ClassID:   &classID,
			Date:      time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
			Status:    models.Present,
			Student: &models.Student{
				ID:   "s1",
				Name: "Aarav Sharma",
				Class: &models.Class{
					ID:      classID,
					Name:    "Grade 5",
					Section: &section,
				},
			},
		},
		{
			StudentID: "s2",
			Date:      time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
			Status:    models.Absent,
			Student:   &models.Student{ID: "s2", Name: "Meera Patel"},
		},
	}

	var buf strings.Builder
	if err := WriteAttendanceCSV(&buf, records); err != nil {
		t.Fatalf("WriteAttendanceCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Name,Date,Status,Class" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Aarav Sharma,2026-03-18,Present,Grade 5 A" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "Meera Patel,2026-03-18,Absent," {
		t.Errorf("row 2 = %q", lines[2])
	}
}
