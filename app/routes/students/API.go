package students

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/LUCY-sama29/school-erp/app/utils"
	"github.com/gofiber/fiber/v2"
)

type studentRequest struct {
	Name        string  `json:"name" form:"name" validate:"required"`
	ClassID     *string `json:"class_id" form:"class_id" validate:"omitempty,uuid"`
	DateOfBirth string  `json:"date_of_birth" form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Phone       *string `json:"phone" form:"phone"`
	Email       *string `json:"email" form:"email" validate:"omitempty,email"`
	ParentName  *string `json:"parent_name" form:"parent_name"`
	ParentPhone *string `json:"parent_phone" form:"parent_phone"`
	Address     *string `json:"address" form:"address"`
}

func (r *studentRequest) apply(student *models.Student) error {
	student.Name = r.Name
	student.ClassID = r.ClassID
	student.Phone = r.Phone
	student.Email = r.Email
	student.ParentName = r.ParentName
	student.ParentPhone = r.ParentPhone
	student.Address = r.Address

	if r.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", r.DateOfBirth)
		if err != nil {
			return err
		}
		student.DateOfBirth = &dob
	}
	return nil
}

func GetStudentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	if classID := c.Query("class_id"); classID != "" {
		students, err := database.GetStudentsByClass(db, classID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load students"})
		}
		return c.JSON(fiber.Map{"students": students})
	}

	students, err := database.GetAllStudents(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load students"})
	}
	return c.JSON(fiber.Map{"students": students})
}

func GetStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"student": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := utils.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student details: " + err.Error()})
	}

	student := &models.Student{}
	if err := req.apply(student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date of birth, expected YYYY-MM-DD"})
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student created successfully",
		"student": student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := utils.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student details: " + err.Error()})
	}

	student := &models.Student{ID: c.Params("id")}
	if err := req.apply(student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date of birth, expected YYYY-MM-DD"})
	}

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	photo, err := database.DeleteStudent(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	if photo != nil && *photo != "" {
		os.Remove(filepath.Join(config.GetConfig().UploadDir, *photo))
	}

	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

// UploadPhotoAPI stores a student photo and removes the replaced file.
func UploadPhotoAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if _, err := database.GetStudentByID(config.GetDB(), studentID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	if err := ValidatePhoto(file); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	filename := PhotoFilename(file.Filename)
	uploadDir := config.GetConfig().UploadDir
	if err := c.SaveFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save file"})
	}

	oldPhoto, err := database.UpdateStudentPhoto(config.GetDB(), studentID, filename)
	if err != nil {
		os.Remove(filepath.Join(uploadDir, filename))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update photo"})
	}

	if oldPhoto != nil && *oldPhoto != "" {
		os.Remove(filepath.Join(uploadDir, *oldPhoto))
	}

	return c.JSON(fiber.Map{
		"message": "Photo uploaded successfully",
		"photo":   filename,
	})
}

// LinkUserAPI attaches a student-role user account to a student record so
// the account can log in.
func LinkUserAPI(c *fiber.Ctx) error {
	type LinkUserRequest struct {
		UserID string `json:"user_id" form:"user_id"`
	}

	studentID := c.Params("id")

	var req LinkUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, err := database.GetUserByID(config.GetDB(), req.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if user.Role != models.RoleStudent {
		return c.Status(400).JSON(fiber.Map{"error": "Only student accounts can be linked"})
	}

	if err := database.LinkStudentUser(config.GetDB(), studentID, req.UserID); err != nil {
		switch {
		case err == sql.ErrNoRows:
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		case database.IsUniqueViolation(err):
			return c.Status(409).JSON(fiber.Map{"error": "User is already linked to another student"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to link user"})
	}

	return c.JSON(fiber.Map{"message": "User linked successfully"})
}
