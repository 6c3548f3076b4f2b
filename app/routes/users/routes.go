package users

import (
	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	users := app.Group("/users")
	users.Use(auth.AuthMiddleware)
	users.Use(auth.RoleMiddleware("admin"))

	users.Get("/", ShowUsersPage)

	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin"))

	api.Get("/", GetUsersAPI)
	api.Post("/", CreateUserAPI)
	api.Put("/:id", UpdateUserAPI)
	api.Post("/:id/reset-password", ResetPasswordAPI)
	api.Delete("/:id", DeleteUserAPI)
}

func ShowUsersPage(c *fiber.Ctx) error {
	allUsers, err := database.GetAllUsers(config.GetDB())
	if err != nil {
		return err
	}

	return c.Render("users/index", fiber.Map{
		"Title":       "Users - School ERP",
		"CurrentPage": "users",
		"username":    c.Locals("username"),
		"users":       allUsers,
	})
}
