package parents

import (
	"database/sql"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupParentRoutes(app *fiber.App) {
	parents := app.Group("/parents")
	parents.Use(auth.AuthMiddleware)
	parents.Use(auth.RoleMiddleware("admin"))

	parents.Get("/link", ShowLinkPage)

	api := app.Group("/api/parents")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin"))

	api.Post("/link", LinkChildAPI)
	api.Get("/:id/children", GetChildrenAPI)
}

// ShowLinkPage renders the form for attaching students to parent accounts.
func ShowLinkPage(c *fiber.Ctx) error {
	db := config.GetDB()

	parentUsers, err := database.GetParentUsers(db)
	if err != nil {
		return err
	}

	students, err := database.GetAllStudents(db)
	if err != nil {
		return err
	}

	return c.Render("parents/link", fiber.Map{
		"Title":       "Link Parent - School ERP",
		"CurrentPage": "parents",
		"username":    c.Locals("username"),
		"parents":     parentUsers,
		"students":    students,
	})
}

// LinkChildAPI attaches a student to a parent account. Linking the same
// pair twice is a no-op.
func LinkChildAPI(c *fiber.Ctx) error {
	type LinkRequest struct {
		ParentUserID string `json:"parent_user_id" form:"parent_user_id"`
		StudentID    string `json:"student_id" form:"student_id"`
	}

	var req LinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.ParentUserID == "" || req.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Parent and student are required"})
	}

	db := config.GetDB()

	user, err := database.GetUserByID(db, req.ParentUserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Parent user not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if user.Role != models.RoleParent {
		return c.Status(400).JSON(fiber.Map{"error": "Selected user is not a parent account"})
	}

	if _, err := database.GetStudentByID(db, req.StudentID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if err := database.LinkParentStudent(db, req.ParentUserID, req.StudentID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to link student"})
	}

	return c.JSON(fiber.Map{"message": "Student linked successfully"})
}

func GetChildrenAPI(c *fiber.Ctx) error {
	children, err := database.GetChildrenSummaries(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load children"})
	}
	return c.JSON(fiber.Map{"children": children})
}
