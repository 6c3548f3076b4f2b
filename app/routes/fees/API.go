package fees

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/LUCY-sama29/school-erp/app/reports"
	"github.com/LUCY-sama29/school-erp/app/services"
	"github.com/gofiber/fiber/v2"
)

func GetFeesAPI(c *fiber.Ctx) error {
	allFees, err := database.GetFees(config.GetDB(), parseFeeFilter(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load fees"})
	}
	return c.JSON(fiber.Map{"fees": allFees})
}

func CreateFeeAPI(c *fiber.Ctx) error {
	type CreateFeeRequest struct {
		StudentID string `json:"student_id" form:"student_id"`
		Amount    string `json:"amount" form:"amount"`
		DueDate   string `json:"due_date" form:"due_date"`
		Note      string `json:"note" form:"note"`
	}

	var req CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student is required"})
	}

	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	fee := &models.Fee{
		StudentID: req.StudentID,
		Amount:    amount,
		Status:    models.FeeUnpaid,
		Note:      req.Note,
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid due date, expected YYYY-MM-DD"})
		}
		fee.DueDate = &due
	}

	if err := database.CreateFee(config.GetDB(), fee); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Fee recorded successfully",
		"fee":     fee,
	})
}

// MarkPaidAPI flips a fee to paid. Marking an already-paid fee again keeps
// it paid with its original payment date.
func MarkPaidAPI(c *fiber.Ctx) error {
	type MarkPaidRequest struct {
		PaidOn string `json:"paid_on" form:"paid_on"`
	}

	var req MarkPaidRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	fee, err := database.GetFeeByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if fee.Status == models.FeePaid {
		return c.JSON(fiber.Map{"message": "Fee is already marked as paid"})
	}

	paidOn := time.Now()
	if req.PaidOn != "" {
		parsed, err := time.Parse("2006-01-02", req.PaidOn)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid payment date, expected YYYY-MM-DD"})
		}
		paidOn = parsed
	}

	if err := database.MarkFeePaid(config.GetDB(), fee.ID, paidOn); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark fee as paid"})
	}

	return c.JSON(fiber.Map{"message": "Fee marked as paid"})
}

func DeleteFeeAPI(c *fiber.Ctx) error {
	if err := database.DeleteFee(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete fee"})
	}
	return c.JSON(fiber.Map{"message": "Fee deleted successfully"})
}

// DownloadReceiptPDF generates the payment receipt for a paid fee. Students
// and parents can only fetch receipts for their own records.
func DownloadReceiptPDF(c *fiber.Ctx) error {
	db := config.GetDB()

	fee, err := database.GetFeeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).Render("404", fiber.Map{
				"Title": "Fee Not Found - School ERP",
			})
		}
		return err
	}

	role := c.Locals("role").(string)
	switch role {
	case "student":
		if studentID, _ := c.Locals("student_id").(string); studentID != fee.StudentID {
			return fiber.NewError(403, "You can only download your own receipts")
		}
	case "parent":
		owns, err := database.ParentOwnsStudent(db, c.Locals("user_id").(string), fee.StudentID)
		if err != nil {
			return err
		}
		if !owns {
			return fiber.NewError(403, "You can only download receipts for your own children")
		}
	}

	if fee.Status != models.FeePaid {
		return fiber.NewError(400, "Receipt available only for paid fees.")
	}

	summary, err := database.GetStudentFeeSummary(db, fee.StudentID)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := reports.RenderReceipt(&buf, config.GetConfig().School, fee, summary); err != nil {
		return err
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, reports.ReceiptFilename(fee.ID)))
	return c.Send(buf.Bytes())
}

// ExportFeesCSV streams the filtered fee list as a CSV download.
func ExportFeesCSV(c *fiber.Ctx) error {
	allFees, err := database.GetFees(config.GetDB(), parseFeeFilter(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load fees"})
	}

	var buf strings.Builder
	if err := WriteFeesCSV(&buf, allFees); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build export"})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="fees.csv"`)
	return c.SendString(buf.String())
}

// WriteFeesCSV writes the export rows: Student, Class, Amount, Status, Date.
func WriteFeesCSV(w *strings.Builder, fees []*models.Fee) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Student", "Class", "Amount", "Status", "Date"}); err != nil {
		return err
	}

	for _, fee := range fees {
		class := fee.ClassName
		if fee.Section != nil && *fee.Section != "" {
			class += " " + *fee.Section
		}
		row := []string{
			fee.StudentName,
			class,
			fmt.Sprintf("%.2f", fee.Amount),
			string(fee.Status),
			fee.CreatedAt.Format("2006-01-02"),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// buildReminders splits dues into deliverable reminders and failures for
// students with no email on file.
func buildReminders(dues []*models.StudentDue) ([]services.Reminder, []string) {
	var reminders []services.Reminder
	var failed []string
	for _, due := range dues {
		if due.Email == nil || *due.Email == "" {
			failed = append(failed, due.StudentName+": no email")
			continue
		}
		reminders = append(reminders, services.Reminder{
			To:          *due.Email,
			StudentName: due.StudentName,
			TotalDue:    due.TotalDue,
			Invoices:    due.Invoices,
		})
	}
	return reminders, failed
}

// SendRemindersAPI emails every student contact with an outstanding balance,
// optionally for one class, and reports how many went through. A student
// without an email on file counts as a failure.
func SendRemindersAPI(c *fiber.Ctx) error {
	classID := c.FormValue("class_id", c.Query("class_id"))

	dues, err := database.GetStudentDues(config.GetDB(), classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dues"})
	}

	cfg := config.GetConfig()
	mailer := services.NewEmailService(cfg.SMTP)
	if !mailer.Configured() {
		return c.Status(400).JSON(fiber.Map{"error": "SMTP is not configured"})
	}

	reminders, failed := buildReminders(dues)
	sent, sendFailed := mailer.SendFeeReminders(cfg.School.Name, reminders)
	failed = append(failed, sendFailed...)

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Reminders sent: %d. Failed: %d.", sent, len(failed)),
		"sent":    sent,
		"failed":  failed,
	})
}
