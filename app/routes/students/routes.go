package students

import (
	"database/sql"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)
	students.Use(auth.RoleMiddleware("admin", "teacher"))

	students.Get("/", ShowStudentsPage)
	students.Get("/:id", ShowStudentProfilePage)

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RoleMiddleware("admin", "teacher"), GetStudentsAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateStudentAPI)
	api.Get("/:id", auth.RoleMiddleware("admin", "teacher"), GetStudentAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateStudentAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteStudentAPI)
	api.Post("/:id/photo", auth.RoleMiddleware("admin"), UploadPhotoAPI)
	api.Post("/:id/link-user", auth.RoleMiddleware("admin"), LinkUserAPI)
}

func ShowStudentsPage(c *fiber.Ctx) error {
	allStudents, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		return err
	}

	allClasses, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return err
	}

	return c.Render("students/index", fiber.Map{
		"Title":       "Students - School ERP",
		"CurrentPage": "students",
		"username":    c.Locals("username"),
		"students":    allStudents,
		"classes":     allClasses,
	})
}

// ShowStudentProfilePage renders one student with their fee history and
// attendance record.
func ShowStudentProfilePage(c *fiber.Ctx) error {
	studentID := c.Params("id")

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).Render("404", fiber.Map{
				"Title": "Student Not Found - School ERP",
			})
		}
		return err
	}

	fees, err := database.GetStudentFees(config.GetDB(), studentID)
	if err != nil {
		return err
	}

	feeSummary, err := database.GetStudentFeeSummary(config.GetDB(), studentID)
	if err != nil {
		return err
	}

	attendance, err := database.GetStudentAttendance(config.GetDB(), studentID)
	if err != nil {
		return err
	}

	attendanceRate, err := database.GetStudentAttendancePercentage(config.GetDB(), studentID)
	if err != nil {
		return err
	}

	return c.Render("students/profile", fiber.Map{
		"Title":          "Student Profile - School ERP",
		"CurrentPage":    "students",
		"username":       c.Locals("username"),
		"student":        student,
		"fees":           fees,
		"feeSummary":     feeSummary,
		"attendance":     attendance,
		"attendanceRate": attendanceRate,
	})
}
