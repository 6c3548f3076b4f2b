package notices

import (
	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupNoticeRoutes(app *fiber.App) {
	notices := app.Group("/notices")
	notices.Use(auth.AuthMiddleware)

	notices.Get("/", ShowNoticesPage)

	api := app.Group("/api/notices")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RoleMiddleware("admin", "teacher"), CreateNoticeAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin", "teacher"), DeleteNoticeAPI)
}

// ShowNoticesPage shows every notice to staff, and class plus school-wide
// notices to students and parents.
func ShowNoticesPage(c *fiber.Ctx) error {
	db := config.GetDB()
	role := c.Locals("role").(string)

	data := fiber.Map{
		"Title":       "Notices - School ERP",
		"CurrentPage": "notices",
		"username":    c.Locals("username"),
	}

	switch role {
	case "admin", "teacher":
		allNotices, err := database.GetAllNotices(db)
		if err != nil {
			return err
		}
		allClasses, err := database.GetAllClasses(db)
		if err != nil {
			return err
		}
		data["notices"] = allNotices
		data["classes"] = allClasses

	case "student":
		student, err := database.GetStudentByID(db, c.Locals("student_id").(string))
		if err != nil {
			return err
		}
		myNotices, err := database.GetNoticesForClass(db, student.ClassID)
		if err != nil {
			return err
		}
		data["notices"] = myNotices

	case "parent":
		children, err := database.GetParentStudents(db, c.Locals("user_id").(string))
		if err != nil {
			return err
		}
		seen := make(map[string]bool)
		var merged []*models.Notice
		for _, child := range children {
			childNotices, err := database.GetNoticesForClass(db, child.ClassID)
			if err != nil {
				return err
			}
			for _, notice := range childNotices {
				if seen[notice.ID] {
					continue
				}
				seen[notice.ID] = true
				merged = append(merged, notice)
			}
		}
		data["notices"] = merged
	}

	return c.Render("notices/index", data)
}
