package marks

import (
	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupMarkRoutes(app *fiber.App) {
	marks := app.Group("/marks")
	marks.Use(auth.AuthMiddleware)
	marks.Use(auth.RoleMiddleware("admin", "teacher"))

	marks.Get("/", ShowMarksEntryPage)

	api := app.Group("/api/marks")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "teacher"))

	api.Post("/", CreateMarkAPI)
	api.Post("/batch", CreateMarksBatchAPI)
	api.Get("/student/:id", GetStudentMarksAPI)
	api.Delete("/:id", DeleteMarkAPI)
}

func ShowMarksEntryPage(c *fiber.Ctx) error {
	db := config.GetDB()

	allClasses, err := database.GetAllClasses(db)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"Title":       "Marks Entry - School ERP",
		"CurrentPage": "marks",
		"username":    c.Locals("username"),
		"classes":     allClasses,
	}

	if classID := c.Query("class_id"); classID != "" {
		students, err := database.GetStudentsByClass(db, classID)
		if err != nil {
			return err
		}
		data["classID"] = classID
		data["students"] = students
	}

	return c.Render("marks/index", data)
}
