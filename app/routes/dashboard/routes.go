package dashboard

import (
	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard")
	dashboard.Use(auth.AuthMiddleware)

	dashboard.Get("/", ShowDashboard)
	dashboard.Get("/admin", auth.RoleMiddleware("admin"), ShowAdminDashboard)
	dashboard.Get("/teacher", auth.RoleMiddleware("teacher"), ShowTeacherDashboard)
	dashboard.Get("/student", auth.RoleMiddleware("student"), ShowStudentDashboard)
	dashboard.Get("/parent", auth.RoleMiddleware("parent"), ShowParentDashboard)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetStatsAPI)
}

// ShowDashboard routes each role to its own dashboard.
func ShowDashboard(c *fiber.Ctx) error {
	role := c.Locals("role").(string)

	switch role {
	case "admin":
		return c.Redirect("/dashboard/admin")
	case "teacher":
		return c.Redirect("/dashboard/teacher")
	case "student":
		return c.Redirect("/dashboard/student")
	case "parent":
		return c.Redirect("/dashboard/parent")
	}

	return c.Status(403).Render("error", fiber.Map{
		"Title":        "Access Forbidden - School ERP",
		"ErrorCode":    "403",
		"ErrorTitle":   "Access Forbidden",
		"ErrorMessage": "Your account role is not recognized.",
	})
}

func ShowAdminDashboard(c *fiber.Ctx) error {
	stats, err := database.GetAdminStats(config.GetDB())
	if err != nil {
		return err
	}

	return c.Render("dashboard/admin", fiber.Map{
		"Title":       "Admin Dashboard - School ERP",
		"CurrentPage": "dashboard",
		"username":    c.Locals("username"),
		"stats":       stats,
	})
}

func ShowTeacherDashboard(c *fiber.Ctx) error {
	stats, err := database.GetTeacherStats(config.GetDB())
	if err != nil {
		return err
	}

	return c.Render("dashboard/teacher", fiber.Map{
		"Title":       "Teacher Dashboard - School ERP",
		"CurrentPage": "dashboard",
		"username":    c.Locals("username"),
		"stats":       stats,
	})
}

func ShowStudentDashboard(c *fiber.Ctx) error {
	studentID := c.Locals("student_id").(string)

	stats, err := database.GetStudentStats(config.GetDB(), studentID)
	if err != nil {
		return err
	}

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err != nil {
		return err
	}

	return c.Render("dashboard/student", fiber.Map{
		"Title":       "Student Dashboard - School ERP",
		"CurrentPage": "dashboard",
		"username":    c.Locals("username"),
		"student":     student,
		"stats":       stats,
	})
}

func ShowParentDashboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	children, err := database.GetChildrenSummaries(config.GetDB(), userID)
	if err != nil {
		return err
	}

	return c.Render("dashboard/parent", fiber.Map{
		"Title":       "Parent Dashboard - School ERP",
		"CurrentPage": "dashboard",
		"username":    c.Locals("username"),
		"children":    children,
	})
}
