package reports

import (
	"fmt"
	"io"
	"strings"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/jung-kurt/gofpdf"
)

// pageBreakY is the cursor depth after which a new page starts mid-table.
const pageBreakY = 260.0

// ReportCardFilename builds the download name for a report card PDF.
func ReportCardFilename(studentName, exam string) string {
	name := strings.ReplaceAll(studentName, " ", "_")
	term := strings.ReplaceAll(exam, " ", "_")
	return fmt.Sprintf("report_card_%s_%s.pdf", name, term)
}

// RenderReportCard writes a report card PDF with one row per subject and a
// totals line with the overall percentage and grade.
func RenderReportCard(w io.Writer, school config.SchoolInfo, student *models.Student, exam string, marks []*models.Mark) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// School header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, school.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, school.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "Phone: "+school.Phone, "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Report Card - "+exam, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(95, 7, "Student: "+student.Name)
	if class := student.FullClassName(); class != "" {
		pdf.Cell(95, 7, "Class: "+class)
	}
	pdf.Ln(10)

	writeTableHeader(pdf)

	var totalMarks, totalMax float64
	pdf.SetFont("Arial", "", 10)
	for _, mark := range marks {
		if pdf.GetY() > pageBreakY {
			pdf.AddPage()
			writeTableHeader(pdf)
			pdf.SetFont("Arial", "", 10)
		}

		pct := Percentage(mark.Marks, mark.MaxMarks)
		pdf.CellFormat(60, 8, mark.Subject, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", mark.Marks), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", mark.MaxMarks), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f%%", pct), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, GradeFor(pct), "1", 1, "C", false, 0, "")

		totalMarks += mark.Marks
		totalMax += mark.MaxMarks
	}

	overall := Percentage(totalMarks, totalMax)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 8, "Total", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", totalMarks), "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", totalMax), "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f%%", overall), "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, GradeFor(overall), "1", 1, "C", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Overall: %.2f%%  Grade: %s", overall, GradeFor(overall)))

	return pdf.Output(w)
}

func writeTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 8, "Subject", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Marks", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Max Marks", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Percentage", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Grade", "1", 1, "C", false, 0, "")
}
