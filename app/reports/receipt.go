package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/jung-kurt/gofpdf"
)

// ReceiptFilename builds the download name for a fee receipt PDF.
func ReceiptFilename(feeID string) string {
	return fmt.Sprintf("receipt_fee_%s.pdf", feeID)
}

// RenderReceipt writes a payment receipt PDF for a single fee invoice,
// including the student's overall paid and outstanding totals.
func RenderReceipt(w io.Writer, school config.SchoolInfo, fee *models.Fee, summary *models.FeeSummary) error {
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
	pdf.CellFormat(0, 8, "Fee Payment Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(95, 7, "Receipt No: "+fee.ID)
	pdf.Cell(95, 7, "Date: "+time.Now().Format("02 Jan 2006"))
	pdf.Ln(7)
	pdf.Cell(95, 7, "Student: "+fee.StudentName)
	class := fee.ClassName
	if fee.Section != nil && *fee.Section != "" {
		class += " " + *fee.Section
	}
	if class != "" {
		pdf.Cell(95, 7, "Class: "+class)
	}
	pdf.Ln(12)

	// Invoice line
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 8, "Description", "1", 0, "", false, 0, "")
	pdf.CellFormat(95, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	description := fee.Note
	if description == "" {
		description = "School fee"
	}
	pdf.CellFormat(95, 8, description, "1", 0, "", false, 0, "")
	pdf.CellFormat(95, 8, fmt.Sprintf("%.2f", fee.Amount), "1", 1, "R", false, 0, "")

	paidOn := ""
	if fee.PaidOn != nil {
		paidOn = fee.PaidOn.Format("02 Jan 2006")
	}
	pdf.CellFormat(95, 8, "Paid On", "1", 0, "", false, 0, "")
	pdf.CellFormat(95, 8, paidOn, "1", 1, "R", false, 0, "")

	displayTotalPaid, remaining := ReceiptTotals(
		fee.Amount, fee.Status == models.FeePaid, summary.TotalPaid, summary.TotalUnpaid,
	)

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total Paid: %.2f", displayTotalPaid))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Remaining Balance: %.2f", remaining))
	pdf.Ln(14)

	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, "This is a computer generated receipt and does not require a signature.")

	return pdf.Output(w)
}
