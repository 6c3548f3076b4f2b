package notices

import (
	"database/sql"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/gofiber/fiber/v2"
)

func CreateNoticeAPI(c *fiber.Ctx) error {
	type CreateNoticeRequest struct {
		Title   string  `json:"title" form:"title"`
		Message string  `json:"message" form:"message"`
		ClassID *string `json:"class_id" form:"class_id"`
	}

	var req CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Title == "" || req.Message == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title and message are required"})
	}

	// An empty class selection means a school-wide notice.
	if req.ClassID != nil && *req.ClassID == "" {
		req.ClassID = nil
	}

	notice := &models.Notice{
		Title:     req.Title,
		Message:   req.Message,
		ClassID:   req.ClassID,
		CreatedBy: c.Locals("user_id").(string),
	}
	if err := database.CreateNotice(config.GetDB(), notice); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create notice"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Notice published successfully",
		"notice":  notice,
	})
}

func DeleteNoticeAPI(c *fiber.Ctx) error {
	if err := database.DeleteNotice(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Notice not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete notice"})
	}
	return c.JSON(fiber.Map{"message": "Notice deleted successfully"})
}
