package assignments

import (
	"database/sql"
	"time"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/gofiber/fiber/v2"
)

func CreateAssignmentAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		ClassID     string `json:"class_id" form:"class_id"`
		DueDate     string `json:"due_date" form:"due_date"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Title == "" || req.ClassID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title and class are required"})
	}

	assignment := &models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		ClassID:     req.ClassID,
		CreatedBy:   c.Locals("user_id").(string),
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid due date, expected YYYY-MM-DD"})
		}
		assignment.DueDate = &due
	}

	if err := database.CreateAssignment(config.GetDB(), assignment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create assignment"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Assignment created successfully",
		"assignment": assignment,
	})
}

func DeleteAssignmentAPI(c *fiber.Ctx) error {
	if err := database.DeleteAssignment(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete assignment"})
	}
	return c.JSON(fiber.Map{"message": "Assignment deleted successfully"})
}

// SubmitAssignmentAPI saves the student's answer. Resubmitting replaces
// the earlier text.
func SubmitAssignmentAPI(c *fiber.Ctx) error {
	type SubmitRequest struct {
		SubmissionText string `json:"submission_text" form:"submission_text"`
	}

	studentID := c.Locals("student_id").(string)
	assignmentID := c.Params("id")

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.SubmissionText == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Submission text is required"})
	}

	db := config.GetDB()

	// The assignment must belong to the student's own class.
	assignment, err := database.GetAssignmentByID(db, assignmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if student.ClassID == nil || *student.ClassID != assignment.ClassID {
		return c.Status(403).JSON(fiber.Map{"error": "This assignment is not for your class"})
	}

	if err := database.UpsertSubmission(db, assignmentID, studentID, req.SubmissionText); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save submission"})
	}

	return c.JSON(fiber.Map{"message": "Submission saved successfully"})
}

func GradeSubmissionAPI(c *fiber.Ctx) error {
	type GradeRequest struct {
		Marks   float64 `json:"marks" form:"marks"`
		Remarks *string `json:"remarks" form:"remarks"`
	}

	var req GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Marks < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Marks cannot be negative"})
	}

	if err := database.GradeSubmission(config.GetDB(), c.Params("id"), req.Marks, req.Remarks); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Submission not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to grade submission"})
	}

	return c.JSON(fiber.Map{"message": "Submission graded successfully"})
}
