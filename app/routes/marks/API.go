package marks

import (
	"database/sql"
	"fmt"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/gofiber/fiber/v2"
)

func validateMark(subject, exam string, obtained, max float64) error {
	if subject == "" {
		return fmt.Errorf("Subject is required")
	}
	if exam == "" {
		return fmt.Errorf("Exam term is required")
	}
	if max <= 0 {
		return fmt.Errorf("Max marks must be positive")
	}
	if obtained < 0 || obtained > max {
		return fmt.Errorf("Marks must be between 0 and max marks")
	}
	return nil
}

func CreateMarkAPI(c *fiber.Ctx) error {
	type CreateMarkRequest struct {
		StudentID string  `json:"student_id" form:"student_id"`
		Subject   string  `json:"subject" form:"subject"`
		Marks     float64 `json:"marks" form:"marks"`
		MaxMarks  float64 `json:"max_marks" form:"max_marks"`
		Exam      string  `json:"exam" form:"exam"`
	}

	var req CreateMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student is required"})
	}
	if err := validateMark(req.Subject, req.Exam, req.Marks, req.MaxMarks); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	mark := &models.Mark{
		StudentID: req.StudentID,
		Subject:   req.Subject,
		Marks:     req.Marks,
		MaxMarks:  req.MaxMarks,
		Exam:      req.Exam,
	}
	if err := database.CreateMark(config.GetDB(), mark); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save mark"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Mark saved successfully",
		"mark":    mark,
	})
}

// CreateMarksBatchAPI saves one exam's subject marks for a student in a
// single transaction.
func CreateMarksBatchAPI(c *fiber.Ctx) error {
	type SubjectMark struct {
		Subject  string  `json:"subject"`
		Marks    float64 `json:"marks"`
		MaxMarks float64 `json:"max_marks"`
	}
	type BatchRequest struct {
		StudentID string        `json:"student_id"`
		Exam      string        `json:"exam"`
		Subjects  []SubjectMark `json:"subjects"`
	}

	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student is required"})
	}
	if len(req.Subjects) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No subject marks submitted"})
	}

	batch := make([]*models.Mark, 0, len(req.Subjects))
	for _, subject := range req.Subjects {
		if err := validateMark(subject.Subject, req.Exam, subject.Marks, subject.MaxMarks); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		batch = append(batch, &models.Mark{
			StudentID: req.StudentID,
			Subject:   subject.Subject,
			Marks:     subject.Marks,
			MaxMarks:  subject.MaxMarks,
			Exam:      req.Exam,
		})
	}

	if err := database.CreateMarksBatch(config.GetDB(), batch); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save marks"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": fmt.Sprintf("Saved %d subject marks", len(batch)),
	})
}

func GetStudentMarksAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")
	exam := c.Query("exam")

	db := config.GetDB()

	if exam == "" {
		exams, err := database.GetExamsForStudent(db, studentID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load exams"})
		}
		return c.JSON(fiber.Map{"exams": exams})
	}

	studentMarks, err := database.GetMarksByStudentAndExam(db, studentID, exam)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load marks"})
	}
	return c.JSON(fiber.Map{"marks": studentMarks})
}

func DeleteMarkAPI(c *fiber.Ctx) error {
	if err := database.DeleteMark(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Mark not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete mark"})
	}
	return c.JSON(fiber.Map{"message": "Mark deleted successfully"})
}
