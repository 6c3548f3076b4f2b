package fees

import (
	"strings"
	"testing"

	"github.com/LUCY-sama29/school-erp/app/models"
)

func TestBuildReminders(t *testing.T) {
	email := "sharma.family@example.com"
	empty := ""

	dues := []*models.StudentDue{
		{StudentID: "s1", StudentName: "Aarav Sharma", Email: &email, TotalDue: 1200.50, Invoices: 2},
		{StudentID: "s2", StudentName: "Diya Patel", Email: nil, TotalDue: 500, Invoices: 1},
		{StudentID: "s3", StudentName: "Rohan Gupta", Email: &empty, TotalDue: 300, Invoices: 1},
	}

	reminders, failed := buildReminders(dues)

	if len(reminders) != 1 {
		t.Fatalf("got %d reminders, want 1", len(reminders))
	}
	if reminders[0].To != email {
		t.Errorf("reminder recipient = %q, want %q", reminders[0].To, email)
	}
	if reminders[0].TotalDue != 1200.50 {
		t.Errorf("reminder total = %v, want 1200.50", reminders[0].TotalDue)
	}

	// Students without an email count as failures, not silent skips.
	if len(failed) != 2 {
		t.Fatalf("got %d failures, want 2", len(failed))
	}
	for _, f := range failed {
		if !strings.HasSuffix(f, "no email") {
			t.Errorf("failure %q, want a no-email entry", f)
		}
	}
}

func TestBuildRemindersEmpty(t *testing.T) {
	reminders, failed := buildReminders(nil)
	if len(reminders) != 0 || len(failed) != 0 {
		t.Errorf("got %d reminders and %d failures, want none", len(reminders), len(failed))
	}
}
