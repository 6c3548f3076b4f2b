package attendance

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/gofiber/fiber/v2"
)

// SaveAttendanceAPI records one student's status for a date. Saving again
// for the same student and date overwrites.
func SaveAttendanceAPI(c *fiber.Ctx) error {
	type SaveRequest struct {
		StudentID string  `json:"student_id" form:"student_id"`
		ClassID   *string `json:"class_id" form:"class_id"`
		Date      string  `json:"date" form:"date"`
		Status    string  `json:"status" form:"status"`
		Remarks   string  `json:"remarks" form:"remarks"`
	}

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student is required"})
	}
	if !models.ValidAttendanceStatus(req.Status) {
		return c.Status(400).JSON(fiber.Map{"error": "Status must be Present, Absent or Leave"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}
	if !WithinEditWindow(date, time.Now()) {
		return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("Attendance can only be changed within %d days", lockDays)})
	}

	err = database.UpsertAttendance(config.GetDB(), req.StudentID, req.ClassID, date, models.AttendanceStatus(req.Status), req.Remarks)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
	}

	return c.JSON(fiber.Map{"message": "Attendance saved successfully"})
}

// BulkSaveAttendanceAPI saves a whole roster for a class and date and
// reports how many records were new versus overwritten.
func BulkSaveAttendanceAPI(c *fiber.Ctx) error {
	type BulkRequest struct {
		ClassID string            `json:"class_id" form:"class_id"`
		Date    string            `json:"date" form:"date"`
		Entries map[string]string `json:"entries"`
	}

	var req BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.ClassID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class is required"})
	}
	if len(req.Entries) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No attendance entries submitted"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}
	if !WithinEditWindow(date, time.Now()) {
		return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("Attendance can only be changed within %d days", lockDays)})
	}

	entries := make(map[string]models.AttendanceStatus, len(req.Entries))
	for studentID, status := range req.Entries {
		if !models.ValidAttendanceStatus(status) {
			return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("Invalid status %q for student %s", status, studentID)})
		}
		entries[studentID] = models.AttendanceStatus(status)
	}

	inserted, updated, err := database.BulkUpsertAttendance(config.GetDB(), req.ClassID, date, entries)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
	}

	return c.JSON(fiber.Map{
		"message":  fmt.Sprintf("Attendance saved: %d recorded, %d updated.", inserted, updated),
		"inserted": inserted,
		"updated":  updated,
	})
}

func UpdateAttendanceAPI(c *fiber.Ctx) error {
	type UpdateRequest struct {
		Status  string `json:"status" form:"status"`
		Remarks string `json:"remarks" form:"remarks"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if !models.ValidAttendanceStatus(req.Status) {
		return c.Status(400).JSON(fiber.Map{"error": "Status must be Present, Absent or Leave"})
	}

	record, err := database.GetAttendanceByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Attendance record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !WithinEditWindow(record.Date, time.Now()) {
		return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("Attendance can only be changed within %d days", lockDays)})
	}

	if err := database.UpdateAttendanceStatus(config.GetDB(), record.ID, models.AttendanceStatus(req.Status), req.Remarks); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update attendance"})
	}

	return c.JSON(fiber.Map{"message": "Attendance updated successfully"})
}

// ExportAttendanceCSV streams the filtered attendance history as a CSV
// download.
func ExportAttendanceCSV(c *fiber.Ctx) error {
	var fromDate, toDate *time.Time
	if v := c.Query("from_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			fromDate = &t
		}
	}
	if v := c.Query("to_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			toDate = &t
		}
	}

	records, err := database.GetAttendanceHistory(config.GetDB(), c.Query("class_id"), c.Query("student_id"), fromDate, toDate)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load attendance"})
	}

	var buf strings.Builder
	if err := WriteAttendanceCSV(&buf, records); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build export"})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="attendance.csv"`)
	return c.SendString(buf.String())
}

// WriteAttendanceCSV writes the export rows: Name, Date, Status, Class.
func WriteAttendanceCSV(w *strings.Builder, records []*models.Attendance) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Name", "Date", "Status", "Class"}); err != nil {
		return err
	}

	for _, record := range records {
		name := ""
		className := ""
		if record.Student != nil {
			name = record.Student.Name
			className = record.Student.FullClassName()
		}
		row := []string{name, record.Date.Format("2006-01-02"), string(record.Status), className}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
