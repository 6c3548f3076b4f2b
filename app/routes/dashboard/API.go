package dashboard

import (
	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/gofiber/fiber/v2"
)

// GetStatsAPI returns the counters for the caller's own role.
func GetStatsAPI(c *fiber.Ctx) error {
	role := c.Locals("role").(string)

	switch role {
	case "admin":
		stats, err := database.GetAdminStats(config.GetDB())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load stats"})
		}
		return c.JSON(fiber.Map{"role": role, "stats": stats})

	case "teacher":
		stats, err := database.GetTeacherStats(config.GetDB())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load stats"})
		}
		return c.JSON(fiber.Map{"role": role, "stats": stats})

	case "student":
		studentID, ok := c.Locals("student_id").(string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "Student profile not linked. Contact admin."})
		}
		stats, err := database.GetStudentStats(config.GetDB(), studentID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load stats"})
		}
		return c.JSON(fiber.Map{"role": role, "stats": stats})

	case "parent":
		children, err := database.GetChildrenSummaries(config.GetDB(), c.Locals("user_id").(string))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load stats"})
		}
		return c.JSON(fiber.Map{"role": role, "children": children})
	}

	return c.Status(403).JSON(fiber.Map{"error": "Unknown role"})
}
