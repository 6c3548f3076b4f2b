package classes

import (
	"database/sql"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/gofiber/fiber/v2"
)

func GetClassesAPI(c *fiber.Ctx) error {
	allClasses, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load classes"})
	}
	return c.JSON(fiber.Map{"classes": allClasses})
}

func CreateClassAPI(c *fiber.Ctx) error {
	type CreateClassRequest struct {
		Name    string  `json:"name" form:"name"`
		Section *string `json:"section" form:"section"`
	}

	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class name is required"})
	}

	class := &models.Class{Name: req.Name, Section: req.Section}
	if err := database.CreateClass(config.GetDB(), class); err != nil {
		return c.Status(409).JSON(fiber.Map{"error": "Class with this name and section already exists"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Class created successfully",
		"class":   class,
	})
}

func UpdateClassAPI(c *fiber.Ctx) error {
	type UpdateClassRequest struct {
		Name    string  `json:"name" form:"name"`
		Section *string `json:"section" form:"section"`
	}

	classID := c.Params("id")

	var req UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class name is required"})
	}

	class := &models.Class{ID: classID, Name: req.Name, Section: req.Section}
	if err := database.UpdateClass(config.GetDB(), class); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
	}

	return c.JSON(fiber.Map{"message": "Class updated successfully"})
}

func GetClassStudentsAPI(c *fiber.Ctx) error {
	classID := c.Params("id")

	students, err := database.GetStudentsByClass(config.GetDB(), classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load students"})
	}
	return c.JSON(fiber.Map{"students": students})
}
