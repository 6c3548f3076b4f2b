package classes

import (
	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupClassRoutes(app *fiber.App) {
	classes := app.Group("/classes")
	classes.Use(auth.AuthMiddleware)
	classes.Use(auth.RoleMiddleware("admin", "teacher"))

	classes.Get("/", ShowClassesPage)

	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RoleMiddleware("admin", "teacher"), GetClassesAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateClassAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateClassAPI)
	api.Get("/:id/students", auth.RoleMiddleware("admin", "teacher"), GetClassStudentsAPI)
}

func ShowClassesPage(c *fiber.Ctx) error {
	allClasses, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return err
	}

	return c.Render("classes/index", fiber.Map{
		"Title":       "Classes - School ERP",
		"CurrentPage": "classes",
		"username":    c.Locals("username"),
		"classes":     allClasses,
	})
}
