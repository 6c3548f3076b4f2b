package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/models"
)

var testSchool = config.SchoolInfo{
	Name:    "Test School",
	Address: "1 Test Lane",
	Phone:   "+91-0000000000",
}

func TestRenderReportCard(t *testing.T) {
	section := "A"
	student := &models.Student{
		ID:    "s1",
		Name:  "Aarav Sharma",
		Class: &models.Class{Name: "Grade 5", Section: &section},
	}
	marks := []*models.Mark{
		{Subject: "Mathematics", Marks: 92, MaxMarks: 100, Exam: "Term 1"},
		{Subject: "Science", Marks: 78, MaxMarks: 100, Exam: "Term 1"},
		{Subject: "English", Marks: 65, MaxMarks: 100, Exam: "Term 1"},
	}

	var buf bytes.Buffer
	if err := RenderReportCard(&buf, testSchool, student, "Term 1", marks); err != nil {
		t.Fatalf("RenderReportCard returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestRenderReportCardManySubjects(t *testing.T) {
	// Enough rows to force a page break mid-table.
	student := &models.Student{ID: "s1", Name: "Aarav Sharma"}
	var marks []*models.Mark
	for i := 0; i < 40; i++ {
		marks = append(marks, &models.Mark{Subject: "Subject", Marks: 50, MaxMarks: 100, Exam: "Term 1"})
	}

	var buf bytes.Buffer
	if err := RenderReportCard(&buf, testSchool, student, "Term 1", marks); err != nil {
		t.Fatalf("RenderReportCard returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty output")
	}
}

func TestRenderReceipt(t *testing.T) {
	paidOn := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	fee := &models.Fee{
		ID:          "f1",
		StudentID:   "s1",
		Amount:      500,
		Status:      models.FeePaid,
		PaidOn:      &paidOn,
		Note:        "Term 1 tuition",
		StudentName: "Aarav Sharma",
		ClassName:   "Grade 5",
	}
	summary := &models.FeeSummary{TotalPaid: 2000, TotalUnpaid: 300, TotalRecords: 5}

	var buf bytes.Buffer
	if err := RenderReceipt(&buf, testSchool, fee, summary); err != nil {
		t.Fatalf("RenderReceipt returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}
