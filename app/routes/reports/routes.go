package reports

import (
	"bytes"
	"database/sql"
	"fmt"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	pdfreports "github.com/LUCY-sama29/school-erp/app/reports"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	reports := app.Group("/reports")
	reports.Use(auth.AuthMiddleware)

	reports.Get("/report-card", auth.RoleMiddleware("admin", "teacher", "student", "parent"), ShowReportCardPage)
	reports.Get("/report-card/:studentId/:exam/pdf", auth.RoleMiddleware("admin", "teacher", "student", "parent"), DownloadReportCardPDF)
}

// canViewStudent enforces record-level access: students see only themselves,
// parents only their linked children. Staff see everyone.
func canViewStudent(c *fiber.Ctx, studentID string) (bool, error) {
	switch c.Locals("role").(string) {
	case "admin", "teacher":
		return true, nil
	case "student":
		own, _ := c.Locals("student_id").(string)
		return own == studentID, nil
	case "parent":
		return database.ParentOwnsStudent(config.GetDB(), c.Locals("user_id").(string), studentID)
	}
	return false, nil
}

func ShowReportCardPage(c *fiber.Ctx) error {
	db := config.GetDB()

	data := fiber.Map{
		"Title":       "Report Card - School ERP",
		"CurrentPage": "reports",
		"username":    c.Locals("username"),
	}

	role := c.Locals("role").(string)
	switch role {
	case "admin", "teacher":
		students, err := database.GetAllStudents(db)
		if err != nil {
			return err
		}
		data["students"] = students
	case "parent":
		children, err := database.GetParentStudents(db, c.Locals("user_id").(string))
		if err != nil {
			return err
		}
		data["students"] = children
	}

	studentID := c.Query("student_id")
	if role == "student" {
		studentID = c.Locals("student_id").(string)
	}

	if studentID != "" {
		allowed, err := canViewStudent(c, studentID)
		if err != nil {
			return err
		}
		if !allowed {
			return fiber.NewError(403, "You can only view report cards for your own children")
		}

		student, err := database.GetStudentByID(db, studentID)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).Render("404", fiber.Map{
					"Title": "Student Not Found - School ERP",
				})
			}
			return err
		}

		exams, err := database.GetExamsForStudent(db, studentID)
		if err != nil {
			return err
		}

		data["student"] = student
		data["exams"] = exams

		if exam := c.Query("exam"); exam != "" {
			marks, err := database.GetMarksByStudentAndExam(db, studentID, exam)
			if err != nil {
				return err
			}

			var totalMarks, totalMax float64
			for _, mark := range marks {
				totalMarks += mark.Marks
				totalMax += mark.MaxMarks
			}
			overall := pdfreports.Percentage(totalMarks, totalMax)

			data["exam"] = exam
			data["marks"] = marks
			data["totalMarks"] = totalMarks
			data["totalMax"] = totalMax
			data["percentage"] = overall
			data["grade"] = pdfreports.GradeFor(overall)
		}
	}

	return c.Render("reports/report_card", data)
}

func DownloadReportCardPDF(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	exam := c.Params("exam")

	allowed, err := canViewStudent(c, studentID)
	if err != nil {
		return err
	}
	if !allowed {
		return fiber.NewError(403, "You can only download report cards for your own children")
	}

	db := config.GetDB()

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Student not found")
		}
		return err
	}

	marks, err := database.GetMarksByStudentAndExam(db, studentID, exam)
	if err != nil {
		return err
	}
	if len(marks) == 0 {
		return fiber.NewError(404, "No marks recorded for this exam")
	}

	var buf bytes.Buffer
	if err := pdfreports.RenderReportCard(&buf, config.GetConfig().School, student, exam, marks); err != nil {
		return err
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, pdfreports.ReportCardFilename(student.Name, exam)))
	return c.Send(buf.Bytes())
}
